package opentok

import "net/url"

// Role is the permission level embedded in a client session token. Its
// lowercase wire value is fixed by the platform's verifier; the mapping
// below is explicit so internal renames can never change the wire format.
type Role int

const (
	// RolePublisher may publish and subscribe to streams.
	RolePublisher Role = iota
	// RoleSubscriber may only subscribe to streams.
	RoleSubscriber
	// RoleModerator may additionally force-disconnect other clients.
	RoleModerator
)

var roleWire = map[Role]string{
	RolePublisher:  "publisher",
	RoleSubscriber: "subscriber",
	RoleModerator:  "moderator",
}

// String returns the exact wire value, or "" for values outside the
// enumeration (which produce a token the platform rejects).
func (r Role) String() string {
	return roleWire[r]
}

// MediaMode determines whether a session transmits streams directly between
// clients (relayed) or through the platform's media router (routed).
type MediaMode int

const (
	// MediaModeRouted transmits streams through the media router. This is
	// the default.
	MediaModeRouted MediaMode = iota
	// MediaModeRelayed attempts direct transmission between clients,
	// falling back to TURN relays under restrictive firewalls.
	MediaModeRelayed
)

var mediaModePreference = map[MediaMode]string{
	MediaModeRouted:  "disabled",
	MediaModeRelayed: "enabled",
}

// preference returns the p2p.preference wire value; unknown values map to
// the platform default "disabled".
func (m MediaMode) preference() string {
	if p, ok := mediaModePreference[m]; ok {
		return p
	}
	return "disabled"
}

// ArchiveMode determines whether a session is archived automatically.
type ArchiveMode int

const (
	// ArchiveModeManual requires an explicit archive request. This is the
	// default.
	ArchiveModeManual ArchiveMode = iota
	// ArchiveModeAlways archives the session automatically.
	ArchiveModeAlways
)

var archiveModeWire = map[ArchiveMode]string{
	ArchiveModeManual: "manual",
	ArchiveModeAlways: "always",
}

// wire returns the archiveMode request value; unknown values map to the
// platform default "manual".
func (m ArchiveMode) wire() string {
	if w, ok := archiveModeWire[m]; ok {
		return w
	}
	return "manual"
}

// SessionOptions are provided at session creation time. The zero value
// requests a routed, manually-archived session with no location hint.
type SessionOptions struct {
	// Location is an IP address the platform uses to situate the session in
	// its global network. When empty, placement follows the first client to
	// connect.
	Location string

	// MediaMode selects relayed or routed transmission.
	MediaMode MediaMode

	// ArchiveMode selects automatic or manual archiving. Archiving requires
	// a routed session.
	ArchiveMode ArchiveMode
}

// values renders the session-create form body. Field names and defaults are
// part of the request contract: archiveMode defaults to "manual",
// p2p.preference to "disabled", and location is omitted when unset.
func (o SessionOptions) values() url.Values {
	v := url.Values{}
	v.Set("archiveMode", o.ArchiveMode.wire())
	if o.Location != "" {
		v.Set("location", o.Location)
	}
	v.Set("p2p.preference", o.MediaMode.preference())
	return v
}

// VideoType classifies the source of a stream.
type VideoType string

const (
	VideoTypeCamera VideoType = "camera"
	VideoTypeScreen VideoType = "screen"
	VideoTypeCustom VideoType = "custom"
)

// StreamInfo describes a single stream within a session.
type StreamInfo struct {
	// ID is the unique stream identifier.
	ID string `json:"id"`

	// VideoType is the stream source: camera, screen or custom.
	VideoType VideoType `json:"videoType"`

	// Name is the stream name, when one was set by the publisher.
	Name string `json:"name"`

	// LayoutClassList holds the layout classes assigned to the stream for
	// composed archive and broadcast layouts.
	LayoutClassList []string `json:"layoutClassList"`
}

// createSessionResponse is one element of the JSON array the platform
// returns from session creation.
type createSessionResponse struct {
	SessionID string `json:"session_id"`
}
