package templates

import (
	"time"

	"github.com/oksasatya/job-recruitment/config"
)

// Option pattern
type Option func(*EmailData)

func WithAppliedAt(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.AppliedAt = utc
		d.AppliedAtText = utc.Format("02 January 2006, 15:04")
	}
}

func WithApplicant(name, email string) Option {
	return func(d *EmailData) {
		d.ApplicantName = name
		d.ApplicantEmail = email
	}
}

func WithRecruitment(teamName, title string) Option {
	return func(d *EmailData) {
		d.TeamName = teamName
		d.RecruitmentTitle = title
	}
}

func WithResume(title string) Option { return func(d *EmailData) { d.ResumeTitle = title } }

func WithProcessID(id string) Option { return func(d *EmailData) { d.RecruitmentProcessID = id } }

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		RecipientEmail: recipient,
		Type:           typ,

		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		AppName:        cfg.AppName,

		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
		PrivacyURL:     cfg.PrivacyURL,
		UnsubscribeURL: cfg.UnsubscribeURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewProcessCreatedData(cfg *config.Config, leaderName, leaderEmail string, opts ...Option) EmailData {
	return NewBaseEmailData(cfg, ProcessCreated, leaderName, leaderEmail, opts...)
}
