package config

type StorageConfig struct {
	Provider  string // local, s3
	LocalPath string
	S3Region  string
	S3Bucket  string
	CDNDomain string
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		LocalPath: getEnv("STORAGE_LOCAL_PATH", "./uploads"),
		S3Region:  getEnv("STORAGE_S3_REGION", "us-east-1"),
		S3Bucket:  getEnv("STORAGE_S3_BUCKET", ""),
		CDNDomain: getEnv("STORAGE_CDN_DOMAIN", ""),
	}
}
