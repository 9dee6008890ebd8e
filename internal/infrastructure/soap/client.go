// Package soap is the transport collaborator: it serializes request payloads
// built by the mapping layer into SOAP envelopes, posts them to the
// processor, and decodes response envelopes back into loosely-typed records.
// All blocking I/O of the integration happens here.
package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"vindicia_gateway/internal/domain/entities"
)

const (
	soapEnvelopeNS   = "http://schemas.xmlsoap.org/soap/envelope/"
	defaultEndpoint  = "https://soap.vindicia.com/soap.pl"
	defaultVersion   = "18.0"
	defaultTimeoutMS = 30000
)

var (
	ErrMissingCredentials = errors.New("missing soap login or password")

	// ErrFault is returned when the processor answers with a SOAP fault
	// instead of a result payload.
	ErrFault = errors.New("soap fault")

	// ErrBadEnvelope is returned when the response cannot be decoded as a
	// SOAP envelope at all.
	ErrBadEnvelope = errors.New("malformed soap envelope")
)

// Config carries the connection settings for the processor's SOAP endpoint.
type Config struct {
	Endpoint string
	Login    string
	Password string
	Version  string
}

// NewConfigFromEnv reads VINDICIA_ENDPOINT, VINDICIA_LOGIN,
// VINDICIA_PASSWORD and VINDICIA_VERSION, keeping local-friendly defaults
// for everything but the credentials.
func NewConfigFromEnv() Config {
	return Config{
		Endpoint: getenvDefault("VINDICIA_ENDPOINT", defaultEndpoint),
		Login:    os.Getenv("VINDICIA_LOGIN"),
		Password: os.Getenv("VINDICIA_PASSWORD"),
		Version:  getenvDefault("VINDICIA_VERSION", defaultVersion),
	}
}

// Client is the SOAP transport. It is stateless apart from configuration and
// safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Login == "" || cfg.Password == "" {
		log.Printf("[soap][client] missing credentials")
		return nil, ErrMissingCredentials
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultTimeoutMS * time.Millisecond},
	}, nil
}

// Call posts one operation (object + action) with the given payload and
// returns the decoded result record. The auth block is injected here so the
// mapping layer never sees credentials.
func (c *Client) Call(ctx context.Context, object, action string, params entities.Record) (entities.Record, error) {
	body, err := c.requestBody(object, action, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", fmt.Sprintf("%s_%s", object, action))

	log.Printf("[soap][client] call start object=%s action=%s body_len=%d", object, action, len(body))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[soap][client] call failed object=%s action=%s err=%v", object, action, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	result, err := DecodeResponse(raw)
	if err != nil {
		log.Printf("[soap][client] decode failed object=%s action=%s status=%d err=%v", object, action, resp.StatusCode, err)
		return nil, err
	}
	log.Printf("[soap][client] call success object=%s action=%s", object, action)
	return result, nil
}

// requestBody builds the full envelope: the action element holds the auth
// block followed by the payload fields.
func (c *Client) requestBody(object, action string, params entities.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	e := xml.NewEncoder(&buf)
	envelope := xml.StartElement{
		Name: xml.Name{Local: "soapenv:Envelope"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:soapenv"}, Value: soapEnvelopeNS},
			{Name: xml.Name{Local: "xmlns:vin"}, Value: fmt.Sprintf("http://soap.vindicia.com/v%s/%s", c.cfg.Version, object)},
		},
	}
	if err := e.EncodeToken(envelope); err != nil {
		return nil, err
	}
	bodyEl := xml.StartElement{Name: xml.Name{Local: "soapenv:Body"}}
	if err := e.EncodeToken(bodyEl); err != nil {
		return nil, err
	}
	actionEl := xml.StartElement{Name: xml.Name{Local: "vin:" + action}}
	if err := e.EncodeToken(actionEl); err != nil {
		return nil, err
	}

	auth := map[string]any{
		"login":    c.cfg.Login,
		"password": c.cfg.Password,
		"version":  c.cfg.Version,
	}
	if err := encodeValue(e, "auth", auth); err != nil {
		return nil, err
	}
	if err := encodeParams(e, params); err != nil {
		return nil, err
	}
	if err := e.EncodeToken(actionEl.End()); err != nil {
		return nil, err
	}
	if err := e.EncodeToken(bodyEl.End()); err != nil {
		return nil, err
	}
	if err := e.EncodeToken(envelope.End()); err != nil {
		return nil, err
	}
	if err := e.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeParams(e *xml.Encoder, params entities.Record) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := encodeValue(e, k, params[k]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeResponse unwraps Envelope > Body, surfaces a SOAP fault as ErrFault,
// and returns the children of the single result element as a record.
func DecodeResponse(raw []byte) (entities.Record, error) {
	d := xml.NewDecoder(bytes.NewReader(raw))

	var envelope xml.StartElement
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			envelope = start
			break
		}
	}
	if envelope.Name.Local != "Envelope" {
		return nil, fmt.Errorf("%w: top element is %q", ErrBadEnvelope, envelope.Name.Local)
	}

	decoded, err := decodeElement(d, envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	tree, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: empty envelope", ErrBadEnvelope)
	}
	body, ok := tree["Body"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing body", ErrBadEnvelope)
	}

	if fault, ok := body["Fault"].(map[string]any); ok {
		code, _ := fault["faultcode"].(string)
		message, _ := fault["faultstring"].(string)
		return nil, fmt.Errorf("%w: %s: %s", ErrFault, code, message)
	}

	// The body holds exactly one result element; its children are the result
	// record.
	for _, v := range body {
		if result, ok := v.(map[string]any); ok {
			return result, nil
		}
	}
	return nil, fmt.Errorf("%w: no result element", ErrBadEnvelope)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
