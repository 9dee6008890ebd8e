package soap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vindicia_gateway/internal/domain/entities"
)

const transactionAuthResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <authResponse xmlns="http://soap.vindicia.com/v18.0/Transaction">
      <return>
        <returnCode>200</returnCode>
        <returnString>OK</returnString>
      </return>
      <transaction>
        <merchantTransactionId>txn-1</merchantTransactionId>
        <VID>vid-1</VID>
        <statusLog>
          <status>Authorized</status>
        </statusLog>
      </transaction>
    </authResponse>
  </soap:Body>
</soap:Envelope>`

func TestClientCall(t *testing.T) {
	var gotBody string
	var gotAction string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		gotBody = string(raw)
		gotAction = r.Header.Get("SOAPAction")
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = w.Write([]byte(transactionAuthResponse))
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		Endpoint: srv.URL,
		Login:    "merchant",
		Password: "secret",
	})
	require.NoError(t, err)

	result, err := client.Call(context.Background(), "Transaction", "auth", entities.Record{
		"transaction": entities.Record{
			"merchantTransactionId": "txn-1",
			"amount":                "25.00",
		},
		"minChargebackProbability": 100,
	})
	require.NoError(t, err)

	assert.Equal(t, "Transaction_auth", gotAction)
	assert.Contains(t, gotBody, "<login>merchant</login>")
	assert.Contains(t, gotBody, "<password>secret</password>")
	assert.Contains(t, gotBody, "<version>18.0</version>")
	assert.Contains(t, gotBody, "<merchantTransactionId>txn-1</merchantTransactionId>")
	assert.Contains(t, gotBody, "<minChargebackProbability>100</minChargebackProbability>")
	// The auth block travels before the payload fields.
	assert.Less(t, strings.Index(gotBody, "<auth>"), strings.Index(gotBody, "<transaction>"))

	ret, ok := result["return"].(map[string]any)
	require.True(t, ok, "return block missing: %v", result)
	assert.Equal(t, "200", ret["returnCode"])

	tx, ok := result["transaction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "txn-1", tx["merchantTransactionId"])
	// A single statusLog entry decodes as a bare object, not a list.
	_, isMap := tx["statusLog"].(map[string]any)
	assert.True(t, isMap)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{Endpoint: "http://localhost"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestDecodeResponseRepeatedSiblings(t *testing.T) {
	raw := []byte(`<?xml version="1.0"?>
<Envelope xmlns="http://schemas.xmlsoap.org/soap/envelope/">
  <Body>
    <fetchResponse>
      <return><returnCode>200</returnCode></return>
      <transactions>
        <merchantTransactionId>txn-1</merchantTransactionId>
      </transactions>
      <transactions>
        <merchantTransactionId>txn-2</merchantTransactionId>
      </transactions>
    </fetchResponse>
  </Body>
</Envelope>`)
	result, err := DecodeResponse(raw)
	require.NoError(t, err)

	list, ok := result["transactions"].([]any)
	require.True(t, ok, "repeated siblings should decode as a list, got %T", result["transactions"])
	require.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "txn-1", first["merchantTransactionId"])
}

func TestDecodeResponseFault(t *testing.T) {
	raw := []byte(`<?xml version="1.0"?>
<Envelope xmlns="http://schemas.xmlsoap.org/soap/envelope/">
  <Body>
    <Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>Internal error</faultstring>
    </Fault>
  </Body>
</Envelope>`)
	_, err := DecodeResponse(raw)
	require.ErrorIs(t, err, ErrFault)
	assert.Contains(t, err.Error(), "Internal error")
}

func TestDecodeResponseBadEnvelope(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not xml", "not xml at all"},
		{"wrong root", "<NotAnEnvelope></NotAnEnvelope>"},
		{"missing body", "<Envelope><Header></Header></Envelope>"},
		{"empty body", "<Envelope><Body></Body></Envelope>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeResponse([]byte(tc.raw))
			assert.ErrorIs(t, err, ErrBadEnvelope)
		})
	}
}

func TestFakeTransport(t *testing.T) {
	fake := NewFakeTransport().
		QueueResult(entities.Record{"return": map[string]any{"returnCode": "200"}}).
		QueueFault("soap:Server", "boom")

	first, err := fake.Call(context.Background(), "Transaction", "auth", entities.Record{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "200", first["return"].(map[string]any)["returnCode"])

	_, err = fake.Call(context.Background(), "Transaction", "capture", nil)
	assert.ErrorIs(t, err, ErrFault)

	_, err = fake.Call(context.Background(), "Transaction", "auth", nil)
	assert.Error(t, err)

	require.Len(t, fake.Calls, 3)
	assert.Equal(t, "auth", fake.Calls[0].Action)
	assert.Equal(t, "capture", fake.Calls[1].Action)
	assert.Equal(t, entities.Record{"k": "v"}, fake.Calls[0].Params)
}
