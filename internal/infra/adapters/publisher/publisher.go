// publisher is the default AWS v1 adapter that pushes the finished
// CSV artifact to an S3 bucket and diffs it against the previously
// published object. Implements the ports.ForPublishing interface.
package publisher

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/gabriel-vasile/mimetype"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"podscrape/internal/app/humanreadable"
	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
	"podscrape/internal/infra/adapters/logger"
)

type forPublishing struct {
	aws     model.AwsConfig
	session *session.Session
	s3      *s3.S3
}

// New returns an S3 adapter implementing the ForPublishing port
// interface, using the profile and region from the spec's aws
// section.
func New(awsConfig model.AwsConfig) ports.ForPublishing {
	s := session.Must(session.NewSessionWithOptions(session.Options{
		Profile: awsConfig.Profile,
		Config: aws.Config{
			Region: aws.String(awsConfig.Region),
		},
	}))
	return &forPublishing{
		aws:     awsConfig,
		session: s,
		s3:      s3.New(s),
	}
}

func (p *forPublishing) getContentType(filename string) (string, error) {
	mimetype.SetLimit(1024 * 1024)
	mimeType, err := mimetype.DetectFile(filename)
	if err != nil {
		return "", err
	}
	return mimeType.String(), nil
}

// Publish uploads r.From as r.Key to the r.Bucket S3 bucket. If
// ContentType is empty in r, the content type of the file in the
// r.From field is detected.
func (p *forPublishing) Publish(ctx context.Context, r *ports.ForPublishingRequest) error {
	l := logger.FromContext(ctx)
	if r == nil {
		return ports.ErrNilPointerRequest
	}
	if strings.TrimSpace(r.From) == "" {
		return ports.ErrFilenameMissing
	}

	if strings.TrimSpace(r.ContentType) == "" {
		var err error
		r.ContentType, err = p.getContentType(r.From)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(r.Key) == "" {
		r.Key = r.From
	}
	if r.StorageClass == "" {
		r.StorageClass = "STANDARD"
	}

	s3path := "s3://" + path.Join(r.Bucket, r.Key)
	fi, err := os.Stat(r.From)
	if err != nil {
		return err
	}
	l.Info("Uploading to S3", "file", r.From, "to", s3path, "storageClass", r.StorageClass, "size", fi.Size(), "humanSize", humanreadable.IEC(fi.Size()))
	f, err := os.Open(r.From)
	if err != nil {
		return err
	}
	defer f.Close()
	uploader := s3manager.NewUploader(p.session)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:       aws.String(r.Bucket),
		Key:          aws.String(r.Key),
		ContentType:  aws.String(r.ContentType),
		Body:         f,
		StorageClass: aws.String(r.StorageClass),
	})
	if err != nil {
		return err
	}
	l.Info("Upload succeeded", "location", aws.StringValue(&result.Location))
	return nil
}

// Diff downloads the previously published object and prints a
// unified diff against fileToDiff to stdout. A missing remote object
// only logs a skip.
func (p *forPublishing) Diff(ctx context.Context, bucket, key, fileToDiff string) error {
	l := logger.FromContext(ctx)

	fileContent, err := os.ReadFile(fileToDiff)
	if err != nil {
		return err
	}
	s3path := "s3://" + path.Join(bucket, key)
	downloader := s3manager.NewDownloader(p.session)
	buf := aws.NewWriteAtBuffer([]byte{})
	n, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			switch awsErr.Code() {
			case "NotFound", "NoSuchKey":
				l.Info("Nothing published yet, skipping diff", "location", s3path, "cause", err)
				return nil
			}
		}
		return err
	}
	l.Info("Downloaded previously published object into buffer", "location", s3path, "size", n, "humanSize", humanreadable.IEC(n))

	edits := myers.ComputeEdits(span.URIFromPath(s3path), string(buf.Bytes()), string(fileContent))
	fmt.Println(gotextdiff.ToUnified(s3path, fileToDiff, string(buf.Bytes()), edits))
	return nil
}
