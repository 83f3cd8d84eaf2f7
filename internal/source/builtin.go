package source

// Builtin returns the catalog used when no file is configured: the Go
// standard library import paths, the most common ones scored higher.
func Builtin() []Entry {
	entries := make([]Entry, 0, len(stdlibPackages))
	for _, pkg := range stdlibPackages {
		entries = append(entries, Entry{Key: pkg, Value: pkg, Score: popular[pkg]})
	}
	return entries
}

var popular = map[string]float64{
	"fmt":           10,
	"errors":        9,
	"context":       9,
	"strings":       8,
	"time":          8,
	"os":            7,
	"io":            7,
	"net/http":      7,
	"sync":          6,
	"encoding/json": 6,
	"testing":       5,
	"path/filepath": 5,
	"strconv":       5,
	"bytes":         4,
	"sort":          4,
	"log":           4,
}

var stdlibPackages = []string{
	"archive/tar", "archive/zip",
	"bufio", "bytes",
	"cmp", "compress/bzip2", "compress/flate", "compress/gzip", "compress/lzw", "compress/zlib",
	"container/heap", "container/list", "container/ring", "context",
	"crypto", "crypto/aes", "crypto/cipher", "crypto/ecdsa", "crypto/ed25519", "crypto/hmac",
	"crypto/md5", "crypto/rand", "crypto/rsa", "crypto/sha1", "crypto/sha256", "crypto/sha512",
	"crypto/subtle", "crypto/tls", "crypto/x509",
	"database/sql", "database/sql/driver",
	"debug/buildinfo", "debug/dwarf", "debug/elf",
	"embed", "encoding", "encoding/base32", "encoding/base64", "encoding/binary", "encoding/csv",
	"encoding/gob", "encoding/hex", "encoding/json", "encoding/pem", "encoding/xml",
	"errors", "expvar",
	"flag", "fmt",
	"go/ast", "go/build", "go/format", "go/parser", "go/printer", "go/scanner", "go/token", "go/types",
	"hash", "hash/adler32", "hash/crc32", "hash/crc64", "hash/fnv", "hash/maphash",
	"html", "html/template",
	"image", "image/color", "image/draw", "image/gif", "image/jpeg", "image/png",
	"io", "io/fs", "iter",
	"log", "log/slog", "log/syslog",
	"maps", "math", "math/big", "math/bits", "math/cmplx", "math/rand", "math/rand/v2",
	"mime", "mime/multipart",
	"net", "net/http", "net/http/cookiejar", "net/http/httptest", "net/http/httputil", "net/http/pprof",
	"net/mail", "net/netip", "net/rpc", "net/smtp", "net/textproto", "net/url",
	"os", "os/exec", "os/signal", "os/user",
	"path", "path/filepath", "plugin",
	"reflect", "regexp", "regexp/syntax",
	"runtime", "runtime/debug", "runtime/pprof", "runtime/trace",
	"slices", "sort", "strconv", "strings", "sync", "sync/atomic", "syscall",
	"testing", "testing/fstest", "testing/iotest", "testing/quick",
	"text/scanner", "text/tabwriter", "text/template",
	"time", "time/tzdata",
	"unicode", "unicode/utf16", "unicode/utf8", "unique", "unsafe",
}
