// Package iojson writes JSON for command line output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// marshalFailure is printed in place of a value that could not be encoded.
// It is built by hand so it can never fail itself.
func marshalFailure(obj any, err error) string {
	typ, _ := json.Marshal(fmt.Sprintf("%T", obj))
	msg, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":"json marshal failed","data":{"type":%s,"json_error":%s}}`, typ, msg)
}

// WriteWith writes obj to w as indented JSON followed by a newline. When obj
// cannot be marshaled an error object is written to ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, marshalFailure(obj, err))
		if werr != nil {
			return werr
		}
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj to w as a single line of JSON, suitable for JSON lines
// output.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal %T: %w", obj, err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
