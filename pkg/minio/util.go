package minio

import (
	"strings"
)

func validateConfig(cfg *Config) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if err := validateBucketName(cfg.Bucket); err != nil {
		return err
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 {
		return NewInvalidInputError("bucket name must be at least 3 characters")
	}
	if len(bucketName) > 63 {
		return NewInvalidInputError("bucket name cannot exceed 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name cannot start or end with hyphen")
	}
	return nil
}

func validateObjectKey(key string) error {
	if key == "" {
		return NewInvalidInputError("object key is required")
	}
	if strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return NewInvalidInputError("object key cannot start or end with '/'")
	}
	if strings.Contains(key, "\\") || strings.Contains(key, "..") {
		return NewInvalidInputError("object key contains invalid characters")
	}
	return nil
}
