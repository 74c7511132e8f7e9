package livestock

import "strings"

// AddForm modela el formulario de alta: guarda lo que el usuario tipeó
// y solo invoca el callback cuando los requeridos están completos.
type AddForm struct {
	Name  string
	Type  Type
	Age   string
	TagID string
}

// NewAddForm devuelve el formulario con sus defaults (tipo cow).
func NewAddForm() AddForm {
	return AddForm{Type: TypeCow}
}

func (f *AddForm) Reset() {
	*f = NewAddForm()
}

func (f *AddForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.TagID) == "" {
		return ErrMissingRequired
	}
	if f.Type != "" && !f.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// Submit valida, llama onAdd una sola vez y limpia el formulario.
// Si la validación o onAdd fallan, el formulario queda como estaba.
func (f *AddForm) Submit(onAdd func(AddInput) error) error {
	if err := f.Validate(); err != nil {
		return err
	}

	typ := f.Type
	if typ == "" {
		typ = TypeCow
	}

	if err := onAdd(AddInput{
		Name:  strings.TrimSpace(f.Name),
		Type:  typ,
		Age:   strings.TrimSpace(f.Age),
		TagID: strings.TrimSpace(f.TagID),
	}); err != nil {
		return err
	}

	f.Reset()
	return nil
}
