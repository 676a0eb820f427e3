package ir

type Location string

const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
)

// Parameter is a single call argument of an operation.
type Parameter struct {
	Name        string // sanitized Python identifier
	WireName    string // original spec name, used on the wire
	In          Location
	Type        TypeRef
	Required    bool
	Description string
}

// Operation is one callable endpoint method, already assigned to a single
// tag. An operation declared under several tags in the document appears once
// per tag, each copy with an identical signature.
type Operation struct {
	Tag          string // raw tag name from the document
	Name         string // sanitized method name, unique within the tag
	Method       string // lowercase HTTP method
	Path         string // path template with {placeholder} segments
	Summary      string
	Description  string
	Params       []Parameter
	RequestBody  *TypeRef
	BodyRequired bool
	Responses    []Response
	Deprecated   bool
}

// Response pairs a status code (or "default") with its payload type.
type Response struct {
	Status string
	Type   *TypeRef
}

// SuccessResponse returns the first 2xx response, falling back to "default",
// or nil when the operation declares neither.
func (o *Operation) SuccessResponse() *Response {
	for i := range o.Responses {
		if len(o.Responses[i].Status) > 0 && o.Responses[i].Status[0] == '2' {
			return &o.Responses[i]
		}
	}
	for i := range o.Responses {
		if o.Responses[i].Status == "default" {
			return &o.Responses[i]
		}
	}
	return nil
}

// PathParams returns the operation's path parameters in declaration order.
func (o *Operation) PathParams() []Parameter {
	return o.paramsIn(InPath)
}

// QueryParams returns the operation's query parameters in declaration order.
func (o *Operation) QueryParams() []Parameter {
	return o.paramsIn(InQuery)
}

// HeaderParams returns the operation's header parameters in declaration order.
func (o *Operation) HeaderParams() []Parameter {
	return o.paramsIn(InHeader)
}

func (o *Operation) paramsIn(loc Location) []Parameter {
	var out []Parameter
	for _, p := range o.Params {
		if p.In == loc {
			out = append(out, p)
		}
	}
	return out
}
