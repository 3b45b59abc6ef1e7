package authsdk

// Session makes calls on behalf of a logged-in user. It holds only the
// token and is safe for concurrent use.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token this session sends.
func (s *Session) Token() string {
	return s.token
}
