// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"

	"github.com/jmfelice/aws-s3/pkg/storage"
)

// MockS3API is a mock implementation of the storage.S3API interface
type MockS3API struct {
	mock.Mock
}

var _ storage.S3API = (*MockS3API)(nil)

// HeadBucket provides a mock function with given fields: ctx, params
func (m *MockS3API) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *s3.HeadBucketOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*s3.HeadBucketOutput)
	}

	return r0, ret.Error(1)
}

// ListObjectsV2 provides a mock function with given fields: ctx, params
func (m *MockS3API) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	ret := m.Called(ctx, params)

	var r0 *s3.ListObjectsV2Output
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*s3.ListObjectsV2Output)
	}

	return r0, ret.Error(1)
}

// DeleteObjects provides a mock function with given fields: ctx, params
func (m *MockS3API) DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *s3.DeleteObjectsOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*s3.DeleteObjectsOutput)
	}

	return r0, ret.Error(1)
}

// NewMockS3API creates a new instance of MockS3API
func NewMockS3API(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockS3API {
	mock_1 := &MockS3API{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}

// MockUploadManager is a mock implementation of the storage.UploadManager interface
type MockUploadManager struct {
	mock.Mock
}

var _ storage.UploadManager = (*MockUploadManager)(nil)

// Upload provides a mock function with given fields: ctx, input
func (m *MockUploadManager) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	ret := m.Called(ctx, input)

	var r0 *manager.UploadOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*manager.UploadOutput)
	}

	return r0, ret.Error(1)
}

// NewMockUploadManager creates a new instance of MockUploadManager
func NewMockUploadManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUploadManager {
	mock_1 := &MockUploadManager{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}
