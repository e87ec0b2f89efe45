// Package smtp provides the SMTP transport used for outgoing mail.
package smtp

import "io"

// Client is the subset of an SMTP session the mailer needs.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface abstracts the SMTP transport for tests.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
