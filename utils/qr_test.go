package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveQRPayloadBookingURL(t *testing.T) {
	route, err := ResolveQRPayload("https://waitify.app/customer/book-appointment?businessId=7&appointmentId=42")

	assert.NoError(t, err)
	assert.Equal(t, "/customer/book-appointment?businessId=7&appointmentId=42&join=true", route)
}

func TestResolveQRPayloadJoinURL(t *testing.T) {
	route, err := ResolveQRPayload("https://waitify.app/join-waitlist/15")

	assert.NoError(t, err)
	assert.Equal(t, "/join-waitlist/15", route)
}

func TestResolveQRPayloadBareAppointmentId(t *testing.T) {
	route, err := ResolveQRPayload("93")

	assert.NoError(t, err)
	assert.Equal(t, "/customer/book-appointment?appointmentId=93&join=true", route)
}

func TestResolveQRPayloadInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"https://waitify.app/somewhere-else",
		"https://waitify.app/customer/book-appointment?businessId=7", // missing appointmentId
	}
	for _, payload := range cases {
		_, err := ResolveQRPayload(payload)
		assert.ErrorIs(t, err, ErrInvalidQRCode, "payload %q", payload)
	}
}

func TestBuildJoinLink(t *testing.T) {
	assert.Equal(t, "https://waitify.app/join-waitlist/4", BuildJoinLink("https://waitify.app/", 4))
	assert.Equal(t, "http://localhost:8002/join-waitlist/4", BuildJoinLink("http://localhost:8002", 4))
}

func TestGeneratedLinksRoundTripThroughResolver(t *testing.T) {
	join := BuildJoinLink("https://waitify.app", 9)
	route, err := ResolveQRPayload(join)
	assert.NoError(t, err)
	assert.Equal(t, "/join-waitlist/9", route)

	booking := BuildBookingLink("https://waitify.app", 3, 21)
	route, err = ResolveQRPayload(booking)
	assert.NoError(t, err)
	assert.Equal(t, "/customer/book-appointment?businessId=3&appointmentId=21&join=true", route)
}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("https://waitify.app/join-waitlist/1", 256)

	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
