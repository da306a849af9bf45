package validate

// Record holds normalized values: string, int or bool per field.
type Record map[string]any

func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

func (r Record) Int(field string) int {
	n, _ := r[field].(int)
	return n
}

func (r Record) Bool(field string) bool {
	b, _ := r[field].(bool)
	return b
}

// Without returns a copy of r minus the given fields.
func (r Record) Without(fields ...string) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}
