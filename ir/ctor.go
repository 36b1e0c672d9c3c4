package ir

// Ctor describes the type a value was built from, the way a constructor
// tag would.
type Ctor struct {
	// Name is the Go type string, e.g. "main.Point" or "map[string]int".
	Name string
	// Plain is set for unnamed maps whose tag is elided.
	Plain bool
	// Anonymous is set for unnamed struct types.
	Anonymous bool
	// Err holds the value itself when it implements error, and Message
	// the result of its Error method, captured at build time.
	Err     error
	Message string
}

func PlainCtor(name string) Ctor {
	return Ctor{Name: name, Plain: true}
}

func NamedCtor(name string) Ctor {
	return Ctor{Name: name}
}

func (c Ctor) IsError() bool {
	return c.Err != nil
}
