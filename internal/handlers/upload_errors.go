package handlers

import (
	"fmt"

	"jobboard_backend/pkg/apperrors"
)

var (
	errBadUploadKind = apperrors.NewBadRequestError("Unknown upload kind")
	errFileAndURL    = apperrors.NewBadRequestError("Provide either a file or a url, not both")
	errNoFileOrURL   = apperrors.NewBadRequestError("A file or a url is required")
	errBadURL        = apperrors.NewBadRequestError("url must be an absolute http(s) URL")
	errBadFileType   = apperrors.NewBadRequestError("File type is not allowed")
)

func errFileTooLarge(maxSize int64) error {
	return apperrors.NewBadRequestError(
		fmt.Sprintf("File exceeds the maximum size of %d bytes", maxSize))
}
