package ir

type AuthStrategy string

const (
	AuthAPIKey AuthStrategy = "api_key"
	AuthBasic  AuthStrategy = "basic"
	AuthNone   AuthStrategy = "none"
)

// AuthDescriptor describes one supported authentication strategy wired into
// the generated client. For api_key the descriptor carries the parameter
// name and whether it travels as a header or a query parameter; basic needs
// nothing further, credentials come from the caller.
type AuthDescriptor struct {
	Strategy   AuthStrategy
	SchemeName string   // declared security scheme name
	ParamName  string   // api_key: header or query parameter name
	In         Location // api_key: InHeader or InQuery
}
