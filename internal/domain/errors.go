package domain

import "errors"

var (
	ErrMissingCredential    = errors.New("gemini api key is not configured")
	ErrNoMedia              = errors.New("provider returned no usable media")
	ErrVideoEditUnsupported = errors.New("video assets cannot be edited")
	ErrImageTooLarge        = errors.New("image exceeds the upload size limit")
	ErrNoProductImage       = errors.New("no product image loaded")
	ErrUnknownAssetType     = errors.New("unknown asset type")
	ErrUnknownStyle         = errors.New("unknown style preset")
	ErrSessionNotFound      = errors.New("session not found")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrAssetNotReady        = errors.New("asset is still generating")
)
