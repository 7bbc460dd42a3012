package report

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Write renders r to w in the given format.
func Write(w io.Writer, r *Report, f Format) error {
	if r == nil {
		return ErrNilReport
	}

	var err error
	switch f {
	case FormatText:
		err = writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func writeText(w io.Writer, r *Report) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "loaded %d records\n", r.Total); err != nil {
		return err
	}

	for _, res := range r.Results {
		if _, err := p.Fprintf(w, "\nuser: %s\n", res.Summary); err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "all fields valid?: %t\n", res.Valid); err != nil {
			return err
		}

		var err error
		if res.Valid {
			_, err = p.Fprintf(w, "data for user %s is valid\n", res.Email)
		} else {
			_, err = p.Fprintf(w, "invalid fields: %v\n", res.InvalidFields)
		}
		if err != nil {
			return err
		}
	}

	_, err := p.Fprintf(w, "\nsummary: %d valid, %d invalid of %d records (run %s)\n",
		r.Valid, r.Invalid, r.Total, r.RunID)
	return err
}
