package ir

// TagGroup is one generated endpoint module: a tag together with every
// operation emitted under it, plus the names the module surfaces as.
type TagGroup struct {
	Tag        string // raw tag name from the document
	Module     string // sanitized module name (api/<Module>.py)
	ClassName  string // endpoint class name (e.g. PetsAPI)
	Attr       string // accessor attribute on the generated Client
	Operations []Operation
}
