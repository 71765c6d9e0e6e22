package mail

type EnrollmentNoticeData struct {
	Name        string
	Email       string
	CompanyName string
	CampaignID  int64
	ProfileURL  string
	Campaigns   []CampaignLine
}

type CampaignLine struct {
	Name       string
	EnrolledAt string
	Current    bool
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
