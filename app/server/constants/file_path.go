package constants

const (
	UploadDirDefault = "/data/classifieds/uploads/" // 附件默认存储目录，文件名为附件 ID
)
