package request

// Hosted-order payloads wrap a direct payload plus the redirect URLs the
// processor needs for its hosted form. Raw card fields are absent on purpose;
// the form collects them.

type HOAAuthorizeRequest struct {
	ReturnURL string `json:"return_url" binding:"required"`
	ErrorURL  string `json:"error_url" binding:"required"`
	IP        string `json:"ip"`

	Transaction AuthorizeRequest `json:"transaction" binding:"required"`
}

type HOAPaymentMethodRequest struct {
	ReturnURL string `json:"return_url" binding:"required"`
	ErrorURL  string `json:"error_url" binding:"required"`
	IP        string `json:"ip"`

	PaymentMethod PaymentMethodRequest `json:"payment_method" binding:"required"`
	Validate      bool                 `json:"validate"`
}

type HOASubscriptionRequest struct {
	ReturnURL string `json:"return_url" binding:"required"`
	ErrorURL  string `json:"error_url" binding:"required"`
	IP        string `json:"ip"`

	Subscription SubscriptionRequest `json:"subscription" binding:"required"`
}
