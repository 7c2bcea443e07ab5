package uploader

import (
	"context"
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

type fakeUploader struct {
	s3manageriface.UploaderAPI
	input *s3manager.UploadInput
	body  string
	err   error
}

func (f *fakeUploader) UploadWithContext(ctx aws.Context, in *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.input = in
	b, _ := ioutil.ReadAll(in.Body)
	f.body = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &s3manager.UploadOutput{Location: "https://bucket.s3.amazonaws.com/" + *in.Key}, nil
}

func TestUpload(t *testing.T) {
	type tc struct {
		name             string
		fake             *fakeUploader
		expectedLocation string
		expectErr        bool
	}

	tcs := []tc{
		{
			name:             "uploaded",
			fake:             &fakeUploader{},
			expectedLocation: "https://bucket.s3.amazonaws.com/downloaded_image.png",
		},
		{
			name:      "s3 error",
			fake:      &fakeUploader{err: errors.New("access denied")},
			expectErr: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			location, err := New(tc.fake, "bucket").Upload(context.Background(), "downloaded_image.png", strings.NewReader("png"))
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if location != tc.expectedLocation {
				t.Fatalf("expected location is: %s but got: %s", tc.expectedLocation, location)
			}
			if *tc.fake.input.Bucket != "bucket" || *tc.fake.input.ACL != "public-read" {
				t.Fatalf("unexpected upload input: %v", tc.fake.input)
			}
			if tc.fake.body != "png" {
				t.Fatalf("expected body %q but got %q", "png", tc.fake.body)
			}
		})
	}
}
