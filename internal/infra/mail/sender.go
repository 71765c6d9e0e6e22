package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

const noticeTemplate = `<p>{{.Name}} &lt;{{.Email}}&gt;{{if .CompanyName}} ({{.CompanyName}}){{end}} was added to campaign #{{.CampaignID}}.</p>
{{if .ProfileURL}}<p><a href="{{.ProfileURL}}">Open in Smartlead</a></p>{{end}}
<ul>
{{range .Campaigns}}<li>{{if .Current}}<strong>{{.Name}}</strong>{{else}}{{.Name}}{{end}} - {{.EnrolledAt}}</li>
{{end}}</ul>
`

var notice = template.Must(template.New("enrollment").Parse(noticeTemplate))

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// NotifyEnrollment mails the configured address the lead's campaigns after an add.
func (s *EmailSender) NotifyEnrollment(ctx context.Context, campaignID int64, lead *entity.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := RenderEnrollmentNotice(BuildNoticeData(campaignID, lead))
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Lead enrolled: %s", lead.Email))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send enrollment notice: %w", err)
	}
	return nil
}

func BuildNoticeData(campaignID int64, lead *entity.Lead) EnrollmentNoticeData {
	name := lead.FullName()
	if name == "" {
		name = lead.Email
	}
	data := EnrollmentNoticeData{
		Name:        name,
		Email:       lead.Email,
		CompanyName: lead.CompanyName,
		CampaignID:  campaignID,
		ProfileURL:  lead.ProfileURL(),
	}
	for _, m := range lead.Campaigns {
		line := CampaignLine{Name: m.CampaignName, EnrolledAt: "date unknown", Current: m.CampaignID == campaignID}
		if m.EnrolledAt != nil {
			line.EnrolledAt = m.EnrolledAt.Format("2006-01-02")
		}
		data.Campaigns = append(data.Campaigns, line)
	}
	return data
}

func RenderEnrollmentNotice(data EnrollmentNoticeData) (string, error) {
	var body bytes.Buffer
	if err := notice.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render enrollment notice: %w", err)
	}
	return body.String(), nil
}
