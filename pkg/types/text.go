package types

// TextField represents a UTF-8 text cell.
type TextField struct {
	Value string
}

// NewTextField creates a text field.
func NewTextField(value string) *TextField {
	return &TextField{Value: value}
}

func (f *TextField) Dtype() Dtype {
	return Text
}

func (f *TextField) String() string {
	return f.Value
}

func (f *TextField) Equals(other Field) bool {
	o, ok := other.(*TextField)
	if !ok {
		return false
	}
	return f.Value == o.Value
}
