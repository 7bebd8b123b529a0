package users

import (
	"github.com/redhat-appstudio/my-microservice/apis/common"
)

// Validate rejects requests whose name or email is empty. Values are not
// otherwise inspected: any non-empty string is accepted.
func (r CreateUserRequest) Validate() error {
	if r.Name == "" || r.Email == "" {
		return common.NewValidationError(MessageNameEmailRequired)
	}
	return nil
}
