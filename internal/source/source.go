// Package source loads page markup from the local filesystem or S3.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/tabs/internal/errors"
)

// DefaultMaxSize caps how much page markup is read.
const DefaultMaxSize = 8 << 20

// S3Scheme prefixes page locations stored in S3.
const S3Scheme = "s3://"

// Location is a parsed page location.
type Location struct {
	Path   string // local file, when Bucket is empty
	Bucket string
	Key    string
}

// IsS3 reports whether the location names an S3 object.
func (l Location) IsS3() bool {
	return l.Bucket != ""
}

// String returns the location in the form ParseLocation accepts.
func (l Location) String() string {
	if l.IsS3() {
		return S3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ParseLocation parses a file path or an s3://bucket/key URL.
func ParseLocation(loc string) (Location, error) {
	if loc == "" {
		return Location{}, errors.New("E131").WithDetail("empty page location")
	}
	if !strings.Contains(loc, "://") {
		return Location{Path: loc}, nil
	}
	rest, ok := strings.CutPrefix(loc, S3Scheme)
	if !ok {
		return Location{}, errors.New("E131").
			WithDetailf("unsupported scheme in %q", loc).
			WithSuggestion("Use a file path or s3://bucket/key")
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Location{}, errors.New("E131").WithDetailf("%q needs both a bucket and a key", loc)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// ObjectGetter is the subset of *s3.Client the loader uses.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options configures the S3 client built on first use.
type S3Options struct {
	Region       string
	Endpoint     string
	UsePathStyle bool
}

// Loader reads page markup.
type Loader struct {
	maxSize int64
	s3opts  S3Options
	logger  *slog.Logger

	mu     sync.Mutex
	client ObjectGetter
}

// Option configures a Loader.
type Option func(*Loader)

// WithS3Client uses client for s3:// locations instead of building one.
func WithS3Client(client ObjectGetter) Option {
	return func(l *Loader) { l.client = client }
}

// WithS3Options sets the region and endpoint of the default S3 client.
func WithS3Options(o S3Options) Option {
	return func(l *Loader) { l.s3opts = o }
}

// WithMaxSize overrides DefaultMaxSize.
func WithMaxSize(n int64) Option {
	return func(l *Loader) { l.maxSize = n }
}

// WithLogger sets the loader's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		maxSize: DefaultMaxSize,
		logger:  slog.Default().With("component", "source"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the markup at loc.
func (l *Loader) Load(ctx context.Context, loc string) ([]byte, error) {
	parsed, err := ParseLocation(loc)
	if err != nil {
		return nil, err
	}
	if parsed.IsS3() {
		return l.loadS3(ctx, parsed)
	}
	return l.loadFile(parsed.Path)
}

func (l *Loader) loadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		te := errors.New("E130").WithDetailf("open %s", path).Wrap(err)
		if os.IsNotExist(err) {
			te = te.WithSuggestion("Check the page path, or set \"page\" in tabs.json")
		}
		return nil, te
	}
	defer f.Close()

	data, err := l.readLimited(f, path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("page loaded", "path", path, "bytes", len(data))
	return data, nil
}

func (l *Loader) loadS3(ctx context.Context, loc Location) ([]byte, error) {
	client, err := l.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return nil, errors.New("E130").WithDetailf("get %s", loc).Wrap(err)
	}
	defer out.Body.Close()

	data, err := l.readLimited(out.Body, loc.String())
	if err != nil {
		return nil, err
	}
	l.logger.Debug("page loaded", "bucket", loc.Bucket, "key", loc.Key, "bytes", len(data))
	return data, nil
}

// readLimited reads r, failing when it holds more than maxSize bytes.
func (l *Loader) readLimited(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return nil, errors.New("E130").WithDetailf("read %s", name).Wrap(err)
	}
	if int64(len(data)) > l.maxSize {
		return nil, errors.New("E130").
			WithDetail(fmt.Sprintf("%s is larger than %d bytes", name, l.maxSize))
	}
	return data, nil
}

// s3Client returns the configured client, building one from the default
// AWS credential chain on first use.
func (l *Loader) s3Client(ctx context.Context) (ObjectGetter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client != nil {
		return l.client, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if l.s3opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(l.s3opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.New("E130").WithDetail("load AWS configuration").Wrap(err)
	}

	l.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if l.s3opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(l.s3opts.Endpoint)
		}
		o.UsePathStyle = l.s3opts.UsePathStyle
	})
	return l.client, nil
}
