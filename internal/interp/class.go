package interp

import "fmt"

// Class is a runtime class value: a name, an optional superclass, and its
// own methods (inherited methods are reached by delegating lookups to the
// superclass). Classes are reference-shared: every instance points at the
// same *Class.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() string     { return "class" }
func (c *Class) String() string { return c.Name }

// Arity is the arity of `init`, or 0 if the class has no initializer.
func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: a new Instance is allocated, and if an
// `init` method exists it is bound to the instance and invoked with the
// supplied arguments (its arity was already checked against the call site).
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// findMethod searches this class's own methods first, then delegates to the
// superclass.
func (c *Class) findMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

// Instance is a runtime object: a reference to its class plus a map of
// fields, created freely on first assignment.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance allocates a new instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (*Instance) Type() string { return "instance" }

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}

// Get looks up name on the instance: fields are checked first, then methods
// walking the class/superclass chain, bound to this instance. ok is false
// if neither a field nor a method named name exists.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method := i.Class.findMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set stores value into the instance's fields, creating the field if it did
// not already exist.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
