package postmark

// Config holds Postmark API credentials. The server token authorizes
// sending; the account token unlocks account-level endpoints and may stay
// empty when only delivery is needed.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}
