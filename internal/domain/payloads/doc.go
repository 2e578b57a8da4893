// Package payloads defines the application contracts for number, text and file payloads.
package payloads
