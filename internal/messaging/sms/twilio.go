package sms

import (
	"context"
	"errors"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

// Send posts one message. The Twilio client has no context support, so ctx
// is only checked before the call.
func (s *TwilioSender) Send(ctx context.Context, to, body string) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return Receipt{}, err
	}
	if resp.Sid == nil {
		return Receipt{}, errors.New("twilio returned no message sid")
	}

	r := Receipt{MessageID: *resp.Sid}
	if resp.Status != nil {
		r.Status = *resp.Status
	}
	return r, nil
}

var _ Sender = (*TwilioSender)(nil)
