// file: model/request.go

package model

// CreateAccountRequest defines the payload for opening a new account.
// The eqfield tags enforce the confirmation fields at the validation layer;
// a confirmation mismatch is a hard failure, unlike the existence and name
// checks which the service reports as recoverable outcomes.
type CreateAccountRequest struct {
	Name                 string `json:"name"`
	AccountNumber        string `json:"account_number"`
	ConfirmAccountNumber string `json:"confirm_account_number" validate:"eqfield=AccountNumber"`
	PIN                  string `json:"-"`
	ConfirmPIN           string `json:"-" validate:"eqfield=PIN"`
	InitialDeposit       string `json:"initial_deposit"`
}
