package source

// Buffer is an addressable source: the raw bytes the lexer scans, the
// encoding the caller declared them to be in, and the name used in
// diagnostics. Buffers are immutable once constructed and are safe to
// share across concurrently running parsers, as long as no single parser
// state is itself shared (see pkg/parser).
type Buffer struct {
	content  []byte
	name     string
	encoding string
}

// DefaultEncoding is assumed when a caller does not declare one.
const DefaultEncoding = "utf-8"

// NewBuffer wraps content under name, declaring its encoding. Only
// "utf-8" is actually decoded by the lexer (see pkg/lexer); other values
// are accepted and round-tripped for downstream tools but are treated as
// UTF-8 for the purposes of this parser, since the pack carries no
// general transcoding library (see DESIGN.md).
func NewBuffer(name string, content []byte, encoding string) *Buffer {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	return &Buffer{content: content, name: name, encoding: encoding}
}

// Content returns the raw bytes of the buffer.
func (b *Buffer) Content() []byte { return b.content }

// Name returns the buffer's diagnostic name, typically a file path.
func (b *Buffer) Name() string { return b.name }

// Encoding returns the buffer's declared encoding.
func (b *Buffer) Encoding() string { return b.encoding }

// Slice returns the substring of the buffer's content covered by r. It
// panics if r is null or out of bounds, mirroring the teacher's
// assumption (pkg/lexer slices l.input directly) that ranges produced by
// this package's own lexer are always valid against their own buffer.
func (b *Buffer) Slice(r Range) string {
	return string(b.content[r.Start.Byte:r.End.Byte])
}
