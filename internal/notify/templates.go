package notify

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"meal-train-go/internal/locations"
)

// CourierContact is the slice of courier data exposed to providers.
type CourierContact struct {
	Name  string
	Phone string
	Email string
}

// SummaryMeal is one entry in the courier pickup summary.
type SummaryMeal struct {
	Name            string
	Phone           string
	MealDescription string
	FreezerFriendly bool
	CanBringToSalem bool
	NoteToCourier   string
}

type ConfirmationData struct {
	Name            string
	Date            time.Time
	Location        string
	MealDescription string
	FreezerFriendly bool
	CancellationURL string
	Couriers        []CourierContact
}

type NewSignupData struct {
	ProviderName    string
	ProviderPhone   string
	MealDescription string
	FreezerFriendly bool
	CanBringToSalem bool
	NoteToCourier   string
	Date            time.Time
	Location        string
	TotalMeals      int
}

type ReminderData struct {
	Name            string
	Date            time.Time
	Location        string
	MealDescription string
	Couriers        []CourierContact
}

type CourierSummaryData struct {
	Location string
	Date     time.Time
	Meals    []SummaryMeal
}

type CancellationNoticeData struct {
	ProviderName    string
	MealDescription string
	Date            time.Time
	Location        string
	RemainingMeals  int
}

type CancellationConfirmedData struct {
	Name            string
	MealDescription string
	Date            time.Time
	Location        string
}

var funcs = template.FuncMap{
	"formatDate": FormatDate,
	"yesno": func(v bool) string {
		if v {
			return "Yes"
		}
		return "No"
	},
	"nl2br": func(s string) template.HTML {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = template.HTMLEscapeString(line)
		}
		return template.HTML(strings.Join(lines, "<br>"))
	},
	"add": func(a, b int) int { return a + b },
}

const baseStyle = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .info-box { background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .highlight { background: #fef3c7; padding: 10px; border-left: 4px solid #f59e0b; margin: 15px 0; }
    .courier-info { background: #e0f2fe; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .summary-box { background: #f0fdf4; padding: 15px; border-radius: 8px; margin: 15px 0; border-left: 4px solid #22c55e; }
    .meal-card { background: #f9fafb; padding: 15px; border-radius: 8px; margin: 15px 0; border: 1px solid #e5e7eb; }
    .note { background: #fef3c7; padding: 10px; border-radius: 4px; margin-top: 10px; }
    .cancel-link { color: #dc2626; }
    .update-box { background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .alert-box { background: #fef2f2; padding: 15px; border-radius: 8px; margin: 15px 0; border-left: 4px solid #dc2626; }
`

const addressPartial = `{{define "address"}}<p><strong>Location:</strong> {{.Location}}</p>
<p><strong>Address:</strong><br>{{nl2br .Address}}</p>
{{if .LocationNote}}<p><em>{{.LocationNote}}</em></p>{{end}}{{end}}`

const courierContactsPartial = `{{define "courierContacts"}}{{range .Couriers}}<p><strong>{{.Name}}:</strong> {{.Phone}} (<a href="mailto:{{.Email}}">{{.Email}}</a>)</p>{{end}}{{end}}`

const shellOpen = `<!DOCTYPE html>
<html>
<head><style>` + baseStyle + `</style></head>
<body>
<div class="container">
`

const shellClose = `</div>
</body>
</html>
`

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(funcs).Parse(addressPartial + courierContactsPartial + shellOpen + `
<h2 style="color: #2563eb;">Thank you for coordinating a meal, {{.Name}}!</h2>
<p>Your meal drop-off has been confirmed:</p>

<div class="info-box">
  <p><strong>Date:</strong> {{formatDate .Date}}</p>
  {{template "address" .}}
  <p><strong>Meal:</strong> {{.MealDescription}}</p>
  <p><strong>Freezer Friendly:</strong> {{yesno .FreezerFriendly}}</p>
</div>

<div class="highlight">
  <p><strong>The courier will follow up to set a specific time to meet at the chosen location.</strong></p>
</div>

<p>If you need to cancel, <a href="{{.CancellationURL}}" class="cancel-link">click here to cancel your meal signup</a>.</p>

<div class="courier-info">
  <h3>Courier Contact{{if gt (len .Couriers) 1}}s{{end}}:</h3>
  {{template "courierContacts" .}}
</div>

<p>Thank you for your generosity!</p>
<p>- The Meal Train Team</p>
` + shellClose))

var newSignupTmpl = template.Must(template.New("newSignup").Funcs(funcs).Parse(shellOpen + `
<h2 style="color: #22c55e;">New Meal Signup!</h2>
<p>A new meal has been added to your pickup route.</p>

<div class="summary-box">
  <p><strong>From:</strong> {{.ProviderName}}</p>
  <p><strong>Phone:</strong> {{.ProviderPhone}}</p>
  <p><strong>Meal:</strong> {{.MealDescription}}</p>
  <p><strong>Freezer Friendly:</strong> {{yesno .FreezerFriendly}}</p>
  <p><strong>Can Bring to Salem:</strong> {{yesno .CanBringToSalem}}</p>
  <p><strong>Date:</strong> {{formatDate .Date}}</p>
  <p><strong>Location:</strong> {{.Location}}</p>
  {{if .NoteToCourier}}<div class="note"><strong>Note from Provider:</strong> {{.NoteToCourier}}</div>{{end}}
</div>

<div class="update-box">
  <p><strong>Total meals for {{.Location}} on {{formatDate .Date}}:</strong> {{.TotalMeals}}</p>
</div>

<p>- The Meal Train Team</p>
` + shellClose))

var reminderTmpl = template.Must(template.New("reminder").Funcs(funcs).Parse(addressPartial + courierContactsPartial + shellOpen + `
<h2 style="color: #2563eb;">Reminder: Meal Drop-off Tomorrow!</h2>
<p>Hi {{.Name}},</p>
<p>This is a friendly reminder that you're scheduled to drop off a meal tomorrow.</p>

<div class="info-box">
  <p><strong>Date:</strong> {{formatDate .Date}}</p>
  {{template "address" .}}
  <p><strong>Your Meal:</strong> {{.MealDescription}}</p>
</div>

<div class="highlight">
  <p><strong>The courier will follow up to set a specific time to meet at the chosen location.</strong></p>
</div>

<div class="courier-info">
  <h3>Need to reach a courier?</h3>
  {{template "courierContacts" .}}
</div>

<p>Thank you for your generosity!</p>
<p>- The Meal Train Team</p>
` + shellClose))

var courierSummaryTmpl = template.Must(template.New("courierSummary").Funcs(funcs).Parse(shellOpen + `
<h2 style="color: #2563eb;">Meal Pickup Summary - {{.Location}}</h2>
<p><strong>Date:</strong> {{formatDate .Date}}</p>

<div class="summary-box">
  <p><strong>Total Meals to Pick Up:</strong> {{len .Meals}}</p>
</div>

{{$total := len .Meals}}
{{range $i, $meal := .Meals}}
<div class="meal-card">
  <h3>Meal {{add $i 1}} of {{$total}}</h3>
  <p><strong>From:</strong> {{$meal.Name}}</p>
  <p><strong>Phone:</strong> {{$meal.Phone}}</p>
  <p><strong>Meal:</strong> {{$meal.MealDescription}}</p>
  <p><strong>Freezer Friendly:</strong> {{yesno $meal.FreezerFriendly}}</p>
  <p><strong>Can Bring to Salem:</strong> {{yesno $meal.CanBringToSalem}}</p>
  {{if $meal.NoteToCourier}}<div class="note"><strong>Note from Provider:</strong> {{$meal.NoteToCourier}}</div>{{end}}
</div>
{{end}}

<hr>
<p>Please ensure all meals are picked up by 2:00 PM.</p>
<p>- The Meal Train Team</p>
` + shellClose))

var cancellationNoticeTmpl = template.Must(template.New("cancellationNotice").Funcs(funcs).Parse(shellOpen + `
<h2 style="color: #dc2626;">Meal Cancellation Notice</h2>
<p>A meal has been cancelled for your pickup route.</p>

<div class="alert-box">
  <p><strong>Cancelled by:</strong> {{.ProviderName}}</p>
  <p><strong>Meal:</strong> {{.MealDescription}}</p>
  <p><strong>Date:</strong> {{formatDate .Date}}</p>
  <p><strong>Location:</strong> {{.Location}}</p>
</div>

<div class="update-box">
  <p><strong>Updated count:</strong> {{.RemainingMeals}} meal{{if ne .RemainingMeals 1}}s{{end}} remaining for {{.Location}} on {{formatDate .Date}}.</p>
</div>

<p>- The Meal Train Team</p>
` + shellClose))

var cancellationConfirmedTmpl = template.Must(template.New("cancellationConfirmed").Funcs(funcs).Parse(shellOpen + `
<h2 style="color: #2563eb;">Meal Cancellation Confirmed</h2>
<p>Hi {{.Name}},</p>
<p>Your meal signup has been successfully cancelled.</p>

<div class="info-box">
  <p><strong>Cancelled Meal:</strong> {{.MealDescription}}</p>
  <p><strong>Date:</strong> {{formatDate .Date}}</p>
  <p><strong>Location:</strong> {{.Location}}</p>
</div>

<p>If you'd like to sign up for a different date, please visit our signup page.</p>

<p>Thank you,</p>
<p>- The Meal Train Team</p>
` + shellClose))

type addressView struct {
	Address      string
	LocationNote string
}

func addressFor(location string) addressView {
	view := addressView{Address: locations.Address(location)}
	if info, ok := locations.Get(location); ok {
		view.LocationNote = info.Note
	}
	return view
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderConfirmation(d ConfirmationData) (string, error) {
	return render(confirmationTmpl, struct {
		ConfirmationData
		addressView
	}{d, addressFor(d.Location)})
}

func RenderNewSignup(d NewSignupData) (string, error) {
	return render(newSignupTmpl, d)
}

func RenderReminder(d ReminderData) (string, error) {
	return render(reminderTmpl, struct {
		ReminderData
		addressView
	}{d, addressFor(d.Location)})
}

func RenderCourierSummary(d CourierSummaryData) (string, error) {
	return render(courierSummaryTmpl, d)
}

func RenderCancellationNotice(d CancellationNoticeData) (string, error) {
	return render(cancellationNoticeTmpl, d)
}

func RenderCancellationConfirmed(d CancellationConfirmedData) (string, error) {
	return render(cancellationConfirmedTmpl, d)
}
