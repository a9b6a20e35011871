package naif

import "horizons/internal/models"

// ResolveCode looks up the code for name after normalization.
func (t *Table) ResolveCode(name string) (int, error) {
	code, ok := t.byName[Normalize(name)]
	if !ok {
		return 0, &models.NotFoundError{Body: models.ByName(name)}
	}
	return code, nil
}

// ResolveName returns the canonical name of code.
func (t *Table) ResolveName(code int) (string, error) {
	name, ok := t.canonical[code]
	if !ok {
		return "", &models.NotFoundError{Body: models.ByCode(code)}
	}
	return name, nil
}

// Resolve turns a Body into a code. Codes pass through untouched because
// Horizons knows far more objects than the bundled table.
func (t *Table) Resolve(body models.Body) (int, error) {
	if body.IsCode() {
		return body.Code(), nil
	}
	return t.ResolveCode(body.Name())
}

// Describe returns the code and, when known, the canonical name of body.
func (t *Table) Describe(body models.Body) (Entry, error) {
	code, err := t.Resolve(body)
	if err != nil {
		return Entry{}, err
	}
	if name, ok := t.canonical[code]; ok {
		return Entry{Name: name, Code: code}, nil
	}
	return Entry{Code: code}, nil
}
