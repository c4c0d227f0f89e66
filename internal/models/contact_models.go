package models

import (
	"net/mail"
	"strings"
)

// ContactForm is the payload posted to the contact endpoint.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// ContactResponse is what the contact endpoint answers with.
type ContactResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Normalize trims surrounding whitespace from every field.
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// Validate returns the first problem with the form, or "" when it can be sent.
func (f ContactForm) Validate() string {
	switch {
	case f.Name == "":
		return "Please enter your name."
	case f.Email == "":
		return "Please enter your email address."
	case f.Message == "":
		return "Please enter a message."
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return "Please enter a valid email address."
	}
	return ""
}
