package models

// CallerIdentity is the AWS principal the loaded credentials belong to
type CallerIdentity struct {
	AccountID string
	ARN       string
	UserID    string
}
