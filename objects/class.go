/*
File    : go-lyra/objects/class.go
Author  : Lyra Maintainers
*/
package objects

import "fmt"

// CallableInterface is the contract shared by everything that can sit on
// the left of a call. It lives here (instead of the function package) so
// classes can hold their methods without a circular import; the
// evaluator type-asserts back to the concrete function type when it
// needs to bind or invoke a method.
type CallableInterface interface {
	Object
	GetName() string
	ArityCount() int
}

// Class represents a user-defined class in Lyra.
// It stores the class name, an optional superclass and the method map.
// A class is itself callable: calling it constructs an instance.
type Class struct {
	Name       string                       // Name of the class
	Superclass *Class                       // Optional superclass, nil when absent
	Methods    map[string]CallableInterface // Methods declared on this class
}

// NewClass creates a class object with an empty method map.
func NewClass(name string, superclass *Class) *Class {
	return &Class{
		Name:       name,
		Superclass: superclass,
		Methods:    make(map[string]CallableInterface),
	}
}

// TryGetMethod retrieves a method by name, walking the superclass chain
// when the class itself does not define it.
func (c *Class) TryGetMethod(name string) (CallableInterface, bool) {
	if method, found := c.Methods[name]; found {
		return method, true
	}
	if c.Superclass != nil {
		return c.Superclass.TryGetMethod(name)
	}
	return nil, false
}

// GetConstructor returns the class's init method if one exists,
// searching the superclass chain like any other method lookup.
func (c *Class) GetConstructor() (CallableInterface, bool) {
	return c.TryGetMethod("init")
}

// GetName returns the class name.
func (c *Class) GetName() string {
	return c.Name
}

// ArityCount returns the number of constructor arguments the class
// expects: the arity of init, or 0 when no init is defined.
func (c *Class) ArityCount() int {
	if ctor, found := c.GetConstructor(); found {
		return ctor.ArityCount()
	}
	return 0
}

// GetType returns the class type
func (c *Class) GetType() ObjectType {
	return ClassType
}

// ToString returns the class name; 'print SomeClass;' shows just that.
func (c *Class) ToString() string {
	return c.Name
}

// ToObject returns a detailed representation including method names
func (c *Class) ToObject() string {
	methods := ""
	for name := range c.Methods {
		methods += fmt.Sprintf("\n  %s", name)
	}
	return fmt.Sprintf("<class(%s) {%s}>", c.Name, methods)
}

// Instance represents a runtime object produced by calling a class.
// It carries a reference to its class and a mutable property map;
// property reads fall back to bound methods when no field matches.
type Instance struct {
	Class  *Class            // Reference to the class definition
	Fields map[string]Object // Map of property names to their values
}

// NewInstance creates a fresh instance of the given class with an empty
// property map.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: make(map[string]Object),
	}
}

// GetField reads a property from the instance's own property map.
func (o *Instance) GetField(name string) (Object, bool) {
	obj, ok := o.Fields[name]
	return obj, ok
}

// SetField writes a property, creating it when absent.
func (o *Instance) SetField(name string, obj Object) {
	o.Fields[name] = obj
}

// GetType returns the instance type
func (o *Instance) GetType() ObjectType {
	return InstanceType
}

// ToString renders the instance as "<ClassName> instance".
func (o *Instance) ToString() string {
	return fmt.Sprintf("<%s> instance", o.Class.Name)
}

// ToObject returns a detailed representation including field names
func (o *Instance) ToObject() string {
	fields := ""
	for name := range o.Fields {
		fields += fmt.Sprintf("\n  %s", name)
	}
	return fmt.Sprintf("<instance(%s) {%s}>", o.Class.Name, fields)
}
