package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format names a textual encoding of a User.
type Format string

// Supported record formats. FormatJSON is the canonical one.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name (case-insensitive) into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// userWire mirrors User with pointer fields so that absent and null fields
// can be told apart from zero values while decoding.
type userWire struct {
	ID     *uint32 `json:"id" yaml:"id"`
	Name   *string `json:"name" yaml:"name"`
	Email  *string `json:"email" yaml:"email"`
	Active *bool   `json:"active" yaml:"active"`
}

func (w userWire) toUser() (User, error) {
	switch {
	case w.ID == nil:
		return User{}, missingField("id")
	case w.Name == nil:
		return User{}, missingField("name")
	case w.Email == nil:
		return User{}, missingField("email")
	case w.Active == nil:
		return User{}, missingField("active")
	}

	return User{
		ID:     *w.ID,
		Name:   *w.Name,
		Email:  *w.Email,
		Active: *w.Active,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: field %q is missing or null", ErrMalformedUser, name)
}

// checkEncodable rejects strings that an encoder would silently rewrite.
func checkEncodable(u User) error {
	if !utf8.ValidString(u.Name) {
		return fmt.Errorf("%w: name is not valid UTF-8", ErrUnencodableUser)
	}
	if !utf8.ValidString(u.Email) {
		return fmt.Errorf("%w: email is not valid UTF-8", ErrUnencodableUser)
	}
	return nil
}

// EncodeUser renders u as indented JSON with one field per line, in the
// order id, name, email, active.
func EncodeUser(u User) (string, error) {
	if err := checkEncodable(u); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodableUser, err)
	}
	return string(data), nil
}

// DecodeUser parses a JSON object with exactly the fields id, name, email
// and active. Every failure wraps ErrMalformedUser and returns a zero User;
// a partially decoded record is never returned.
func DecodeUser(text string) (User, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	var w userWire
	if err := dec.Decode(&w); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrMalformedUser, err)
	}

	// Only white space may follow the object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return User{}, fmt.Errorf("%w: unexpected content after record", ErrMalformedUser)
	}

	return w.toUser()
}

// encodeUserYAML renders u as a YAML mapping in the same field order as
// EncodeUser.
func encodeUserYAML(u User) (string, error) {
	if err := checkEncodable(u); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(u); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodableUser, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodableUser, err)
	}
	return buf.String(), nil
}

// decodeUserYAML applies the same strictness rules as DecodeUser to a
// single YAML document.
func decodeUserYAML(text string) (User, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	var w userWire
	if err := dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return User{}, fmt.Errorf("%w: empty document", ErrMalformedUser)
		}
		return User{}, fmt.Errorf("%w: %v", ErrMalformedUser, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return User{}, fmt.Errorf("%w: unexpected content after record", ErrMalformedUser)
	}

	return w.toUser()
}

// MarshalUser encodes u in the given format.
func MarshalUser(u User, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return EncodeUser(u)
	case FormatYAML:
		return encodeUserYAML(u)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// UnmarshalUser decodes text written in the given format.
func UnmarshalUser(text string, f Format) (User, error) {
	switch f {
	case FormatJSON:
		return DecodeUser(text)
	case FormatYAML:
		return decodeUserYAML(text)
	default:
		return User{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
