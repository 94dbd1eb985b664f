package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// Answer is one question/answer pair returned by the backend.
type Answer struct {
	Question string `json:"question" msgpack:"question"`
	Answer   string `json:"answer" msgpack:"answer"`
}

// UploadResponse is the body of the upload endpoint. A non-empty Error
// means the backend rejected the submission; otherwise Answers holds one
// entry per question in backend order.
type UploadResponse struct {
	Error   string   `json:"error,omitempty" msgpack:"error,omitempty"`
	Answers []Answer `json:"answers" msgpack:"answers"`
}

// Failed reports whether the backend returned a structured error.
func (r *UploadResponse) Failed() bool {
	return r.Error != ""
}

// HasOutcome reports whether the response carries either an error or an
// answers list. An explicit empty list counts; a missing one does not.
func (r *UploadResponse) HasOutcome() bool {
	return r.Failed() || r.Answers != nil
}

// wireResponse accepts any value in the error field.
type wireResponse struct {
	Error   interface{} `json:"error" msgpack:"error"`
	Answers []Answer    `json:"answers" msgpack:"answers"`
}

// UnmarshalJSON decodes a response whose error may be any JSON value.
func (r *UploadResponse) UnmarshalJSON(data []byte) error {
	var w wireResponse
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Error = errorText(w.Error)
	r.Answers = w.Answers
	return nil
}

// DecodeMsgpack decodes a response whose error may be any msgpack value.
func (r *UploadResponse) DecodeMsgpack(dec *msgpack.Decoder) error {
	var w wireResponse
	if err := dec.Decode(&w); err != nil {
		return err
	}
	r.Error = errorText(w.Error)
	r.Answers = w.Answers
	return nil
}

// errorText renders a backend error value as display text. Null, false,
// zero and the empty string mean no error.
func errorText(v interface{}) string {
	switch e := v.(type) {
	case nil:
		return ""
	case string:
		return e
	case bool:
		if !e {
			return ""
		}
		return "true"
	case float64:
		if e == 0 {
			return ""
		}
		return strconv.FormatFloat(e, 'f', -1, 64)
	case float32:
		if e == 0 {
			return ""
		}
		return strconv.FormatFloat(float64(e), 'f', -1, 32)
	case int8, int16, int32, int64, uint8, uint16, uint32, uint64, int, uint:
		s := fmt.Sprint(e)
		if s == "0" {
			return ""
		}
		return s
	default:
		if b, err := json.Marshal(e); err == nil {
			return string(b)
		}
		return fmt.Sprint(e)
	}
}
