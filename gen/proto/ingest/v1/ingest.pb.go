// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.7
// 	protoc        (unknown)
// source: ingest/v1/ingest.proto

package ingestv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageRef      string                 `protobuf:"bytes,1,opt,name=image_ref,json=imageRef,proto3" json:"image_ref,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptRequest) Reset() {
	*x = ProcessReceiptRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptRequest) ProtoMessage() {}

func (x *ProcessReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptRequest.ProtoReflect.Descriptor instead.
func (*ProcessReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessReceiptRequest) GetImageRef() string {
	if x != nil {
		return x.ImageRef
	}
	return ""
}

type ProcessReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ProcessingResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptResponse) Reset() {
	*x = ProcessReceiptResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptResponse) ProtoMessage() {}

func (x *ProcessReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptResponse.ProtoReflect.Descriptor instead.
func (*ProcessReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessReceiptResponse) GetResult() *ProcessingResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ParsedLineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     *float64               `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3,oneof" json:"unit_price,omitempty"`
	TotalPrice    float64                `protobuf:"fixed64,4,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsedLineItem) Reset() {
	*x = ParsedLineItem{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsedLineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsedLineItem) ProtoMessage() {}

func (x *ParsedLineItem) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsedLineItem.ProtoReflect.Descriptor instead.
func (*ParsedLineItem) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{2}
}

func (x *ParsedLineItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ParsedLineItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ParsedLineItem) GetUnitPrice() float64 {
	if x != nil && x.UnitPrice != nil {
		return *x.UnitPrice
	}
	return 0
}

func (x *ParsedLineItem) GetTotalPrice() float64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

func (x *ParsedLineItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ProcessingResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Items           []*ParsedLineItem      `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	StoreName       *string                `protobuf:"bytes,2,opt,name=store_name,json=storeName,proto3,oneof" json:"store_name,omitempty"`
	ReceiptDate     *string                `protobuf:"bytes,3,opt,name=receipt_date,json=receiptDate,proto3,oneof" json:"receipt_date,omitempty"` // YYYY-MM-DD
	Subtotal        *float64               `protobuf:"fixed64,4,opt,name=subtotal,proto3,oneof" json:"subtotal,omitempty"`
	Tax             *float64               `protobuf:"fixed64,5,opt,name=tax,proto3,oneof" json:"tax,omitempty"`
	Total           *float64               `protobuf:"fixed64,6,opt,name=total,proto3,oneof" json:"total,omitempty"`
	ConfidenceScore float64                `protobuf:"fixed64,7,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	ProcessingNotes string                 `protobuf:"bytes,8,opt,name=processing_notes,json=processingNotes,proto3" json:"processing_notes,omitempty"`
	UsedFallback    bool                   `protobuf:"varint,9,opt,name=used_fallback,json=usedFallback,proto3" json:"used_fallback,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ProcessingResult) Reset() {
	*x = ProcessingResult{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingResult) ProtoMessage() {}

func (x *ProcessingResult) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingResult.ProtoReflect.Descriptor instead.
func (*ProcessingResult) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessingResult) GetItems() []*ParsedLineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ProcessingResult) GetStoreName() string {
	if x != nil && x.StoreName != nil {
		return *x.StoreName
	}
	return ""
}

func (x *ProcessingResult) GetReceiptDate() string {
	if x != nil && x.ReceiptDate != nil {
		return *x.ReceiptDate
	}
	return ""
}

func (x *ProcessingResult) GetSubtotal() float64 {
	if x != nil && x.Subtotal != nil {
		return *x.Subtotal
	}
	return 0
}

func (x *ProcessingResult) GetTax() float64 {
	if x != nil && x.Tax != nil {
		return *x.Tax
	}
	return 0
}

func (x *ProcessingResult) GetTotal() float64 {
	if x != nil && x.Total != nil {
		return *x.Total
	}
	return 0
}

func (x *ProcessingResult) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *ProcessingResult) GetProcessingNotes() string {
	if x != nil {
		return x.ProcessingNotes
	}
	return ""
}

func (x *ProcessingResult) GetUsedFallback() bool {
	if x != nil {
		return x.UsedFallback
	}
	return false
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{4}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{5}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{6}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       int32                  `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     int32                  `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  int32                  `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() int32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{8}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Confidence    float32                `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	UsedFallback  bool                   `protobuf:"varint,5,opt,name=used_fallback,json=usedFallback,proto3" json:"used_fallback,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,6,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ResultJson    []byte                 `protobuf:"bytes,7,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt     string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{9}
}

func (x *GetJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetJobResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetJobResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *GetJobResponse) GetUsedFallback() bool {
	if x != nil {
		return x.UsedFallback
	}
	return false
}

func (x *GetJobResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *GetJobResponse) GetResultJson() []byte {
	if x != nil {
		return x.ResultJson
	}
	return nil
}

func (x *GetJobResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetJobResponse) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *GetJobResponse) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ExportPantryListRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPantryListRequest) Reset() {
	*x = ExportPantryListRequest{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPantryListRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPantryListRequest) ProtoMessage() {}

func (x *ExportPantryListRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPantryListRequest.ProtoReflect.Descriptor instead.
func (*ExportPantryListRequest) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{10}
}

func (x *ExportPantryListRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportPantryListResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPantryListResponse) Reset() {
	*x = ExportPantryListResponse{}
	mi := &file_ingest_v1_ingest_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPantryListResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPantryListResponse) ProtoMessage() {}

func (x *ExportPantryListResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ingest_v1_ingest_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPantryListResponse.ProtoReflect.Descriptor instead.
func (*ExportPantryListResponse) Descriptor() ([]byte, []int) {
	return file_ingest_v1_ingest_proto_rawDescGZIP(), []int{11}
}

func (x *ExportPantryListResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_ingest_v1_ingest_proto protoreflect.FileDescriptor

const file_ingest_v1_ingest_proto_rawDesc = "" +
	"\n" +
	"\x16ingest/v1/ingest.proto\x12\tingest.v1\"4\n" +
	"\x15ProcessReceiptRequest\x12\x1b\n" +
	"\timage_ref\x18\x01 \x01(\tR\bimageRef\"M\n" +
	"\x16ProcessReceiptResponse\x123\n" +
	"\x06result\x18\x01 \x01(\v2\x1b.ingest.v1.ProcessingResultR\x06result\"\xb0\x01\n" +
	"\x0eParsedLineItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\"\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01H\x00R\tunitPrice\x88\x01\x01\x12\x1f\n" +
	"\vtotal_price\x18\x04 \x01(\x01R\n" +
	"totalPrice\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategoryB\r\n" +
	"\v_unit_price\"\x9c\x03\n" +
	"\x10ProcessingResult\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.ingest.v1.ParsedLineItemR\x05items\x12\"\n" +
	"\n" +
	"store_name\x18\x02 \x01(\tH\x00R\tstoreName\x88\x01\x01\x12&\n" +
	"\freceipt_date\x18\x03 \x01(\tH\x01R\vreceiptDate\x88\x01\x01\x12\x1f\n" +
	"\bsubtotal\x18\x04 \x01(\x01H\x02R\bsubtotal\x88\x01\x01\x12\x15\n" +
	"\x03tax\x18\x05 \x01(\x01H\x03R\x03tax\x88\x01\x01\x12\x19\n" +
	"\x05total\x18\x06 \x01(\x01H\x04R\x05total\x88\x01\x01\x12)\n" +
	"\x10confidence_score\x18\a \x01(\x01R\x0fconfidenceScore\x12)\n" +
	"\x10processing_notes\x18\b \x01(\tR\x0fprocessingNotes\x12#\n" +
	"\rused_fallback\x18\t \x01(\bR\fusedFallbackB\r\n" +
	"\v_store_nameB\x0f\n" +
	"\r_receipt_dateB\v\n" +
	"\t_subtotalB\x06\n" +
	"\x04_taxB\b\n" +
	"\x06_total\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xdc\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\x05R\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\x05R\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\x05R\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\x123\n" +
	"\aresults\x18\x06 \x03(\v2\x19.ingest.v1.IngestResponseR\aresults\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xc6\x02\n" +
	"\x0eGetJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\x12#\n" +
	"\rused_fallback\x18\x05 \x01(\bR\fusedFallback\x12!\n" +
	"\fneeds_review\x18\x06 \x01(\bR\vneedsReview\x12\x1f\n" +
	"\vresult_json\x18\a \x01(\fR\n" +
	"resultJson\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"0\n" +
	"\x17ExportPantryListRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\".\n" +
	"\x18ExportPantryListResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc9\x02\n" +
	"\x10IngestionService\x12U\n" +
	"\x0eProcessReceipt\x12 .ingest.v1.ProcessReceiptRequest\x1a!.ingest.v1.ProcessReceiptResponse\x12E\n" +
	"\n" +
	"IngestFile\x12\x1c.ingest.v1.IngestFileRequest\x1a\x19.ingest.v1.IngestResponse\x12X\n" +
	"\x0fIngestDirectory\x12!.ingest.v1.IngestDirectoryRequest\x1a\".ingest.v1.IngestDirectoryResponse\x12=\n" +
	"\x06GetJob\x12\x18.ingest.v1.GetJobRequest\x1a\x19.ingest.v1.GetJobResponse2l\n" +
	"\rExportService\x12[\n" +
	"\x10ExportPantryList\x12\".ingest.v1.ExportPantryListRequest\x1a#.ingest.v1.ExportPantryListResponseBCZAgithub.com/pantryflow/receipt-ingest/gen/proto/ingest/v1;ingestv1b\x06proto3"

var (
	file_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_ingest_v1_ingest_proto_rawDescData []byte
)

func file_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ingest_v1_ingest_proto_rawDesc), len(file_ingest_v1_ingest_proto_rawDesc)))
	})
	return file_ingest_v1_ingest_proto_rawDescData
}

var file_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_ingest_v1_ingest_proto_goTypes = []any{
	(*ProcessReceiptRequest)(nil),    // 0: ingest.v1.ProcessReceiptRequest
	(*ProcessReceiptResponse)(nil),   // 1: ingest.v1.ProcessReceiptResponse
	(*ParsedLineItem)(nil),           // 2: ingest.v1.ParsedLineItem
	(*ProcessingResult)(nil),         // 3: ingest.v1.ProcessingResult
	(*IngestFileRequest)(nil),        // 4: ingest.v1.IngestFileRequest
	(*IngestResponse)(nil),           // 5: ingest.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),   // 6: ingest.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),  // 7: ingest.v1.IngestDirectoryResponse
	(*GetJobRequest)(nil),            // 8: ingest.v1.GetJobRequest
	(*GetJobResponse)(nil),           // 9: ingest.v1.GetJobResponse
	(*ExportPantryListRequest)(nil),  // 10: ingest.v1.ExportPantryListRequest
	(*ExportPantryListResponse)(nil), // 11: ingest.v1.ExportPantryListResponse
}
var file_ingest_v1_ingest_proto_depIdxs = []int32{
	3,  // 0: ingest.v1.ProcessReceiptResponse.result:type_name -> ingest.v1.ProcessingResult
	2,  // 1: ingest.v1.ProcessingResult.items:type_name -> ingest.v1.ParsedLineItem
	5,  // 2: ingest.v1.IngestDirectoryResponse.results:type_name -> ingest.v1.IngestResponse
	0,  // 3: ingest.v1.IngestionService.ProcessReceipt:input_type -> ingest.v1.ProcessReceiptRequest
	4,  // 4: ingest.v1.IngestionService.IngestFile:input_type -> ingest.v1.IngestFileRequest
	6,  // 5: ingest.v1.IngestionService.IngestDirectory:input_type -> ingest.v1.IngestDirectoryRequest
	8,  // 6: ingest.v1.IngestionService.GetJob:input_type -> ingest.v1.GetJobRequest
	10, // 7: ingest.v1.ExportService.ExportPantryList:input_type -> ingest.v1.ExportPantryListRequest
	1,  // 8: ingest.v1.IngestionService.ProcessReceipt:output_type -> ingest.v1.ProcessReceiptResponse
	5,  // 9: ingest.v1.IngestionService.IngestFile:output_type -> ingest.v1.IngestResponse
	7,  // 10: ingest.v1.IngestionService.IngestDirectory:output_type -> ingest.v1.IngestDirectoryResponse
	9,  // 11: ingest.v1.IngestionService.GetJob:output_type -> ingest.v1.GetJobResponse
	11, // 12: ingest.v1.ExportService.ExportPantryList:output_type -> ingest.v1.ExportPantryListResponse
	8,  // [8:13] is the sub-list for method output_type
	3,  // [3:8] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_ingest_v1_ingest_proto_init() }
func file_ingest_v1_ingest_proto_init() {
	if File_ingest_v1_ingest_proto != nil {
		return
	}
	file_ingest_v1_ingest_proto_msgTypes[2].OneofWrappers = []any{}
	file_ingest_v1_ingest_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ingest_v1_ingest_proto_rawDesc), len(file_ingest_v1_ingest_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_ingest_v1_ingest_proto = out.File
	file_ingest_v1_ingest_proto_goTypes = nil
	file_ingest_v1_ingest_proto_depIdxs = nil
}
