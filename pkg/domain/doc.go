// Package domain contains the core domain entities and types shared across
// the bridge. These types represent the business concepts (remote endpoints,
// transports, bookmark changes) and are intentionally free of infrastructure
// concerns so they can be used by every layer.
package domain
