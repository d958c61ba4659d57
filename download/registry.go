package download

import "github.com/kbukum/ytdiarize/provider"

// NewRegistry creates a new provider registry for download providers.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}
