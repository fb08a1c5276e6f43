package models

import "github.com/ayoisaiah/monotimer/internal/apperr"

var errDecodeDTO = &apperr.Error{
	Message: "invalid %s in remote session %s",
}
