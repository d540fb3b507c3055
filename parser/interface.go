package parser

// ManifestParser parses raw expectation-manifest bytes into a Manifest.
// Implementations validate the document against the manifest schema before
// decoding, so a returned Manifest is always well-formed.
type ManifestParser interface {
	// Parse unmarshals manifest bytes into a Manifest struct.
	Parse(data []byte) (*Manifest, error)
}
