package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrUnsupportedFileType = errors.New("file type not supported")
	ErrFileTooLarge        = errors.New("file exceeds the size limit")
	ErrNotAttended         = errors.New("certificates can only be uploaded for attended programs")
)
