// Package dto defines the wire types exchanged with the PhonePe API.
package dto

// PayPayload is the JSON document that is base64-encoded into the
// initiate-pay request. Field order matters: the encoded payload is signed,
// so marshalling must be deterministic.
type PayPayload struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	MobileNumber          string            `json:"mobileNumber"`
	PaymentInstrument     PaymentInstrument `json:"paymentInstrument"`
}

// PaymentInstrument selects the hosted payment page flow.
type PaymentInstrument struct {
	Type string `json:"type"`
}

// PayRequest is the outer body of the initiate-pay call.
type PayRequest struct {
	Request string `json:"request"`
}

// PayResponse is the processor's answer to the initiate-pay call.
type PayResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		InstrumentResponse struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

// StatusResponse is the processor's answer to the status check.
type StatusResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Amount int64 `json:"amount"`
	} `json:"data"`
}
