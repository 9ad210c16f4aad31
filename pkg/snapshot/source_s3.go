package snapshot

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
)

// S3Options configures the object-store snapshot source. Endpoint and
// PathStyle exist for MinIO-style deployments.
type S3Options struct {
	Bucket       string
	Key          string
	Region       string
	Endpoint     string
	PathStyle    bool
	AccessKey    string
	SecretKey    string
	SessionToken string
	PollInterval time.Duration
}

// S3Source polls an object for new snapshot versions, using the ETag to
// skip unchanged objects.
type S3Source struct {
	opts    S3Options
	client  *s3.Client
	metrics *metrics.Registry
	log     logging.Logger

	updates  chan Update
	cancel   context.CancelFunc
	once     sync.Once
	lastETag string
}

// NewS3Source builds the client and starts polling.
func NewS3Source(ctx context.Context, opts S3Options, m *metrics.Registry) (*S3Source, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.AccessKey != "" || opts.SecretKey != "" || opts.SessionToken != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		if opts.PathStyle {
			o.UsePathStyle = true
		}
	})

	if opts.PollInterval <= 0 {
		opts.PollInterval = 30 * time.Second
	}

	pollCtx, cancel := context.WithCancel(ctx)
	s := &S3Source{
		opts:    opts,
		client:  client,
		metrics: reg(m),
		log: logging.With(
			logging.Component("snapshot"),
			logging.Source("s3"),
			logging.Path(opts.Bucket+"/"+opts.Key)),
		updates: make(chan Update, 1),
		cancel:  cancel,
	}
	go s.poll(pollCtx)
	return s, nil
}

// Updates returns the delivery channel.
func (s *S3Source) Updates() <-chan Update { return s.updates }

// Close stops polling and closes the update channel.
func (s *S3Source) Close() error {
	s.once.Do(s.cancel)
	return nil
}

func (s *S3Source) poll(ctx context.Context) {
	defer close(s.updates)

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	s.fetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetch(ctx)
		}
	}
}

func (s *S3Source) fetch(ctx context.Context) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.opts.Key),
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Warn("head snapshot object", logging.Error(err))
		s.metrics.RecordSnapshot("s3", "error", 0)
		return
	}
	etag := aws.ToString(head.ETag)
	if etag != "" && etag == s.lastETag {
		return
	}

	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.opts.Key),
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Warn("get snapshot object", logging.Error(err))
		s.metrics.RecordSnapshot("s3", "error", 0)
		return
	}
	data, err := io.ReadAll(obj.Body)
	obj.Body.Close()
	if err != nil {
		s.log.Warn("read snapshot object", logging.Error(err))
		s.metrics.RecordSnapshot("s3", "error", 0)
		return
	}

	payload, err := decodePayload(data, isCompressedPath(s.opts.Key))
	if err != nil {
		s.log.Warn("decompress snapshot object", logging.Error(err))
		s.metrics.RecordDecodeError()
		s.metrics.RecordSnapshot("s3", "error", 0)
		return
	}
	graph, report, err := Decode(payload)
	if err != nil {
		s.log.Warn("decode snapshot object", logging.Error(err))
		s.metrics.RecordDecodeError()
		s.metrics.RecordSnapshot("s3", "error", 0)
		return
	}

	s.lastETag = etag
	s.metrics.RecordSnapshot("s3", "ok", len(payload))
	s.metrics.RecordDroppedEdges(report.Sanitize.DroppedEdges)
	s.log.Info("snapshot loaded",
		logging.NodeCount(len(graph.Nodes)),
		logging.EdgeCount(len(graph.Edges)))

	select {
	case s.updates <- Update{Graph: graph, Report: report, Bytes: len(payload), Origin: "s3"}:
	case <-ctx.Done():
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- Update{Graph: graph, Report: report, Bytes: len(payload), Origin: "s3"}:
		default:
		}
	}
}
