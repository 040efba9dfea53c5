package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ErrInvalidQRCode is surfaced to the user verbatim by the scan endpoint.
var ErrInvalidQRCode = errors.New("invalid QR code")

// GenerateQRCode renders content as PNG bytes.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildJoinLink is the URL encoded into a waitlist QR code.
func BuildJoinLink(origin string, waitlistId uint) string {
	return fmt.Sprintf("%s/join-waitlist/%d", strings.TrimRight(origin, "/"), waitlistId)
}

// BuildBookingLink is the URL encoded into an appointment QR code.
func BuildBookingLink(origin string, businessId, appointmentId uint) string {
	return fmt.Sprintf("%s/customer/book-appointment?businessId=%d&appointmentId=%d",
		strings.TrimRight(origin, "/"), businessId, appointmentId)
}

// ResolveQRPayload maps a scanned payload to a client route.
//
// A URL whose path contains "book-appointment" resolves to the booking route
// with its businessId/appointmentId carried over; a URL for a join link
// resolves to the join route; any non-URL payload is treated as a bare
// appointment id. Everything else is invalid.
func ResolveQRPayload(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", ErrInvalidQRCode
	}

	if strings.HasPrefix(payload, "http") {
		u, err := url.Parse(payload)
		if err != nil {
			return "", ErrInvalidQRCode
		}

		if strings.Contains(u.Path, "book-appointment") {
			businessId := u.Query().Get("businessId")
			appointmentId := u.Query().Get("appointmentId")
			if businessId == "" || appointmentId == "" {
				return "", ErrInvalidQRCode
			}
			return fmt.Sprintf("/customer/book-appointment?businessId=%s&appointmentId=%s&join=true",
				url.QueryEscape(businessId), url.QueryEscape(appointmentId)), nil
		}

		if idx := strings.Index(u.Path, "/join-waitlist/"); idx >= 0 {
			id := strings.Trim(u.Path[idx+len("/join-waitlist/"):], "/")
			if id == "" {
				return "", ErrInvalidQRCode
			}
			return "/join-waitlist/" + id, nil
		}

		return "", ErrInvalidQRCode
	}

	// Bare payloads are appointment ids.
	return fmt.Sprintf("/customer/book-appointment?appointmentId=%s&join=true",
		url.QueryEscape(payload)), nil
}
