// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: vialscan/v1/vialscan.proto

package vialscanv1

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

type ScanType int32

const (
	ScanType_SCAN_TYPE_UNSPECIFIED ScanType = 0
	ScanType_SCAN_TYPE_LARGE_LABEL ScanType = 1
	ScanType_SCAN_TYPE_COA         ScanType = 2
	ScanType_SCAN_TYPE_VIAL        ScanType = 3
)

// Enum value maps for ScanType.
var (
	ScanType_name = map[int32]string{
		0: "SCAN_TYPE_UNSPECIFIED",
		1: "SCAN_TYPE_LARGE_LABEL",
		2: "SCAN_TYPE_COA",
		3: "SCAN_TYPE_VIAL",
	}
	ScanType_value = map[string]int32{
		"SCAN_TYPE_UNSPECIFIED": 0,
		"SCAN_TYPE_LARGE_LABEL": 1,
		"SCAN_TYPE_COA":         2,
		"SCAN_TYPE_VIAL":        3,
	}
)

func (x ScanType) Enum() *ScanType {
	p := new(ScanType)
	*p = x
	return p
}

func (x ScanType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ScanType) Descriptor() protoreflect.EnumDescriptor {
	return file_vialscan_v1_vialscan_proto_enumTypes[0].Descriptor()
}

func (ScanType) Type() protoreflect.EnumType {
	return &file_vialscan_v1_vialscan_proto_enumTypes[0]
}

func (x ScanType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ScanType.Descriptor instead.
func (ScanType) EnumDescriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{0}
}

type ReconciliationState int32

const (
	ReconciliationState_RECONCILIATION_STATE_UNSPECIFIED  ReconciliationState = 0
	ReconciliationState_RECONCILIATION_STATE_BOTH_MISSING ReconciliationState = 1
	ReconciliationState_RECONCILIATION_STATE_LABEL_ONLY   ReconciliationState = 2
	ReconciliationState_RECONCILIATION_STATE_VIAL_ONLY    ReconciliationState = 3
	ReconciliationState_RECONCILIATION_STATE_MATCH        ReconciliationState = 4
	ReconciliationState_RECONCILIATION_STATE_MISMATCH     ReconciliationState = 5
)

// Enum value maps for ReconciliationState.
var (
	ReconciliationState_name = map[int32]string{
		0: "RECONCILIATION_STATE_UNSPECIFIED",
		1: "RECONCILIATION_STATE_BOTH_MISSING",
		2: "RECONCILIATION_STATE_LABEL_ONLY",
		3: "RECONCILIATION_STATE_VIAL_ONLY",
		4: "RECONCILIATION_STATE_MATCH",
		5: "RECONCILIATION_STATE_MISMATCH",
	}
	ReconciliationState_value = map[string]int32{
		"RECONCILIATION_STATE_UNSPECIFIED":  0,
		"RECONCILIATION_STATE_BOTH_MISSING": 1,
		"RECONCILIATION_STATE_LABEL_ONLY":   2,
		"RECONCILIATION_STATE_VIAL_ONLY":    3,
		"RECONCILIATION_STATE_MATCH":        4,
		"RECONCILIATION_STATE_MISMATCH":     5,
	}
)

func (x ReconciliationState) Enum() *ReconciliationState {
	p := new(ReconciliationState)
	*p = x
	return p
}

func (x ReconciliationState) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ReconciliationState) Descriptor() protoreflect.EnumDescriptor {
	return file_vialscan_v1_vialscan_proto_enumTypes[1].Descriptor()
}

func (ReconciliationState) Type() protoreflect.EnumType {
	return &file_vialscan_v1_vialscan_proto_enumTypes[1]
}

func (x ReconciliationState) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ReconciliationState.Descriptor instead.
func (ReconciliationState) EnumDescriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{1}
}

type VialRecord struct {
	state                      protoimpl.MessageState `protogen:"open.v1"`
	Radiopharmaceutical        string                 `protobuf:"bytes,1,opt,name=radiopharmaceutical,proto3" json:"radiopharmaceutical,omitempty"`
	Rx                         string                 `protobuf:"bytes,2,opt,name=rx,proto3" json:"rx,omitempty"`
	VialRx                     string                 `protobuf:"bytes,3,opt,name=vial_rx,json=vialRx,proto3" json:"vial_rx,omitempty"`
	PatientId                  string                 `protobuf:"bytes,4,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	ActualAmount               string                 `protobuf:"bytes,5,opt,name=actual_amount,json=actualAmount,proto3" json:"actual_amount,omitempty"`
	CalibrationDate            string                 `protobuf:"bytes,6,opt,name=calibration_date,json=calibrationDate,proto3" json:"calibration_date,omitempty"`
	LotNumber                  string                 `protobuf:"bytes,7,opt,name=lot_number,json=lotNumber,proto3" json:"lot_number,omitempty"`
	OrderedAmount              string                 `protobuf:"bytes,8,opt,name=ordered_amount,json=orderedAmount,proto3" json:"ordered_amount,omitempty"`
	Volume                     string                 `protobuf:"bytes,9,opt,name=volume,proto3" json:"volume,omitempty"`
	Manufacturer               string                 `protobuf:"bytes,10,opt,name=manufacturer,proto3" json:"manufacturer,omitempty"`
	RadioactivityConcentration string                 `protobuf:"bytes,11,opt,name=radioactivity_concentration,json=radioactivityConcentration,proto3" json:"radioactivity_concentration,omitempty"`
	unknownFields              protoimpl.UnknownFields
	sizeCache                  protoimpl.SizeCache
}

func (x *VialRecord) Reset() {
	*x = VialRecord{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VialRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VialRecord) ProtoMessage() {}

func (x *VialRecord) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VialRecord.ProtoReflect.Descriptor instead.
func (*VialRecord) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{0}
}

func (x *VialRecord) GetRadiopharmaceutical() string {
	if x != nil {
		return x.Radiopharmaceutical
	}
	return ""
}

func (x *VialRecord) GetRx() string {
	if x != nil {
		return x.Rx
	}
	return ""
}

func (x *VialRecord) GetVialRx() string {
	if x != nil {
		return x.VialRx
	}
	return ""
}

func (x *VialRecord) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *VialRecord) GetActualAmount() string {
	if x != nil {
		return x.ActualAmount
	}
	return ""
}

func (x *VialRecord) GetCalibrationDate() string {
	if x != nil {
		return x.CalibrationDate
	}
	return ""
}

func (x *VialRecord) GetLotNumber() string {
	if x != nil {
		return x.LotNumber
	}
	return ""
}

func (x *VialRecord) GetOrderedAmount() string {
	if x != nil {
		return x.OrderedAmount
	}
	return ""
}

func (x *VialRecord) GetVolume() string {
	if x != nil {
		return x.Volume
	}
	return ""
}

func (x *VialRecord) GetManufacturer() string {
	if x != nil {
		return x.Manufacturer
	}
	return ""
}

func (x *VialRecord) GetRadioactivityConcentration() string {
	if x != nil {
		return x.RadioactivityConcentration
	}
	return ""
}

type StartSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionRequest) Reset() {
	*x = StartSessionRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionRequest) ProtoMessage() {}

func (x *StartSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionRequest.ProtoReflect.Descriptor instead.
func (*StartSessionRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{1}
}

func (x *StartSessionRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type StartSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionResponse) Reset() {
	*x = StartSessionResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionResponse) ProtoMessage() {}

func (x *StartSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionResponse.ProtoReflect.Descriptor instead.
func (*StartSessionResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{2}
}

func (x *StartSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ScanDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ScanType      ScanType               `protobuf:"varint,2,opt,name=scan_type,json=scanType,proto3,enum=vialscan.v1.ScanType" json:"scan_type,omitempty"`
	Image         []byte                 `protobuf:"bytes,3,opt,name=image,proto3" json:"image,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDocumentRequest) Reset() {
	*x = ScanDocumentRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDocumentRequest) ProtoMessage() {}

func (x *ScanDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDocumentRequest.ProtoReflect.Descriptor instead.
func (*ScanDocumentRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{3}
}

func (x *ScanDocumentRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ScanDocumentRequest) GetScanType() ScanType {
	if x != nil {
		return x.ScanType
	}
	return ScanType_SCAN_TYPE_UNSPECIFIED
}

func (x *ScanDocumentRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

type ScanDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Record         *VialRecord            `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	Reconciliation ReconciliationState    `protobuf:"varint,2,opt,name=reconciliation,proto3,enum=vialscan.v1.ReconciliationState" json:"reconciliation,omitempty"`
	Prompt         string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	Lines          []string               `protobuf:"bytes,4,rep,name=lines,proto3" json:"lines,omitempty"`
	ImageUrl       string                 `protobuf:"bytes,5,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ScanDocumentResponse) Reset() {
	*x = ScanDocumentResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDocumentResponse) ProtoMessage() {}

func (x *ScanDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDocumentResponse.ProtoReflect.Descriptor instead.
func (*ScanDocumentResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{4}
}

func (x *ScanDocumentResponse) GetRecord() *VialRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *ScanDocumentResponse) GetReconciliation() ReconciliationState {
	if x != nil {
		return x.Reconciliation
	}
	return ReconciliationState_RECONCILIATION_STATE_UNSPECIFIED
}

func (x *ScanDocumentResponse) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *ScanDocumentResponse) GetLines() []string {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *ScanDocumentResponse) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

type GetRecordRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRecordRequest) Reset() {
	*x = GetRecordRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecordRequest) ProtoMessage() {}

func (x *GetRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRecordRequest.ProtoReflect.Descriptor instead.
func (*GetRecordRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{5}
}

func (x *GetRecordRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetRecordResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *VialRecord            `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	NeedsReprint  bool                   `protobuf:"varint,2,opt,name=needs_reprint,json=needsReprint,proto3" json:"needs_reprint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRecordResponse) Reset() {
	*x = GetRecordResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecordResponse) ProtoMessage() {}

func (x *GetRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRecordResponse.ProtoReflect.Descriptor instead.
func (*GetRecordResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{6}
}

func (x *GetRecordResponse) GetRecord() *VialRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *GetRecordResponse) GetNeedsReprint() bool {
	if x != nil {
		return x.NeedsReprint
	}
	return false
}

type UpdateFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Field         string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldRequest) Reset() {
	*x = UpdateFieldRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldRequest) ProtoMessage() {}

func (x *UpdateFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldRequest.ProtoReflect.Descriptor instead.
func (*UpdateFieldRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateFieldRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *UpdateFieldRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *UpdateFieldRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type UpdateFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *VialRecord            `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldResponse) Reset() {
	*x = UpdateFieldResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldResponse) ProtoMessage() {}

func (x *UpdateFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldResponse.ProtoReflect.Descriptor instead.
func (*UpdateFieldResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateFieldResponse) GetRecord() *VialRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ResolveRxRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	SessionId string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	// Manual entry when set; autogenerate otherwise.
	ManualRx      string `protobuf:"bytes,2,opt,name=manual_rx,json=manualRx,proto3" json:"manual_rx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveRxRequest) Reset() {
	*x = ResolveRxRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveRxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveRxRequest) ProtoMessage() {}

func (x *ResolveRxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveRxRequest.ProtoReflect.Descriptor instead.
func (*ResolveRxRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{9}
}

func (x *ResolveRxRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ResolveRxRequest) GetManualRx() string {
	if x != nil {
		return x.ManualRx
	}
	return ""
}

type ResolveRxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rx            string                 `protobuf:"bytes,1,opt,name=rx,proto3" json:"rx,omitempty"`
	NeedsReprint  bool                   `protobuf:"varint,2,opt,name=needs_reprint,json=needsReprint,proto3" json:"needs_reprint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveRxResponse) Reset() {
	*x = ResolveRxResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveRxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveRxResponse) ProtoMessage() {}

func (x *ResolveRxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveRxResponse.ProtoReflect.Descriptor instead.
func (*ResolveRxResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{10}
}

func (x *ResolveRxResponse) GetRx() string {
	if x != nil {
		return x.Rx
	}
	return ""
}

func (x *ResolveRxResponse) GetNeedsReprint() bool {
	if x != nil {
		return x.NeedsReprint
	}
	return false
}

type SetAttestationRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	SessionId        string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	LabelRxCorrect   bool                   `protobuf:"varint,2,opt,name=label_rx_correct,json=labelRxCorrect,proto3" json:"label_rx_correct,omitempty"`
	VialRxCorrect    bool                   `protobuf:"varint,3,opt,name=vial_rx_correct,json=vialRxCorrect,proto3" json:"vial_rx_correct,omitempty"`
	PatientIdCorrect bool                   `protobuf:"varint,4,opt,name=patient_id_correct,json=patientIdCorrect,proto3" json:"patient_id_correct,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SetAttestationRequest) Reset() {
	*x = SetAttestationRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAttestationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAttestationRequest) ProtoMessage() {}

func (x *SetAttestationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAttestationRequest.ProtoReflect.Descriptor instead.
func (*SetAttestationRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{11}
}

func (x *SetAttestationRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SetAttestationRequest) GetLabelRxCorrect() bool {
	if x != nil {
		return x.LabelRxCorrect
	}
	return false
}

func (x *SetAttestationRequest) GetVialRxCorrect() bool {
	if x != nil {
		return x.VialRxCorrect
	}
	return false
}

func (x *SetAttestationRequest) GetPatientIdCorrect() bool {
	if x != nil {
		return x.PatientIdCorrect
	}
	return false
}

type SetAttestationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAttestationResponse) Reset() {
	*x = SetAttestationResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAttestationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAttestationResponse) ProtoMessage() {}

func (x *SetAttestationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAttestationResponse.ProtoReflect.Descriptor instead.
func (*SetAttestationResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{12}
}

type SaveRecordRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveRecordRequest) Reset() {
	*x = SaveRecordRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveRecordRequest) ProtoMessage() {}

func (x *SaveRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveRecordRequest.ProtoReflect.Descriptor instead.
func (*SaveRecordRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{13}
}

func (x *SaveRecordRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type SaveRecordResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveRecordResponse) Reset() {
	*x = SaveRecordResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveRecordResponse) ProtoMessage() {}

func (x *SaveRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveRecordResponse.ProtoReflect.Descriptor instead.
func (*SaveRecordResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{14}
}

type Vial struct {
	state                      protoimpl.MessageState `protogen:"open.v1"`
	Id                         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Radiopharmaceutical        string                 `protobuf:"bytes,2,opt,name=radiopharmaceutical,proto3" json:"radiopharmaceutical,omitempty"`
	RxNumber                   int32                  `protobuf:"varint,3,opt,name=rx_number,json=rxNumber,proto3" json:"rx_number,omitempty"`
	PatientId                  string                 `protobuf:"bytes,4,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	ActualAmount               string                 `protobuf:"bytes,5,opt,name=actual_amount,json=actualAmount,proto3" json:"actual_amount,omitempty"`
	CalibrationDate            string                 `protobuf:"bytes,6,opt,name=calibration_date,json=calibrationDate,proto3" json:"calibration_date,omitempty"`
	LotNumber                  string                 `protobuf:"bytes,7,opt,name=lot_number,json=lotNumber,proto3" json:"lot_number,omitempty"`
	EnteredBy                  string                 `protobuf:"bytes,8,opt,name=entered_by,json=enteredBy,proto3" json:"entered_by,omitempty"`
	EnteredDateTime            string                 `protobuf:"bytes,9,opt,name=entered_date_time,json=enteredDateTime,proto3" json:"entered_date_time,omitempty"`
	OrderedAmount              string                 `protobuf:"bytes,10,opt,name=ordered_amount,json=orderedAmount,proto3" json:"ordered_amount,omitempty"`
	Manufacturer               string                 `protobuf:"bytes,11,opt,name=manufacturer,proto3" json:"manufacturer,omitempty"`
	Volume                     string                 `protobuf:"bytes,12,opt,name=volume,proto3" json:"volume,omitempty"`
	RadioactivityConcentration string                 `protobuf:"bytes,13,opt,name=radioactivity_concentration,json=radioactivityConcentration,proto3" json:"radioactivity_concentration,omitempty"`
	unknownFields              protoimpl.UnknownFields
	sizeCache                  protoimpl.SizeCache
}

func (x *Vial) Reset() {
	*x = Vial{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vial) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vial) ProtoMessage() {}

func (x *Vial) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vial.ProtoReflect.Descriptor instead.
func (*Vial) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{15}
}

func (x *Vial) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vial) GetRadiopharmaceutical() string {
	if x != nil {
		return x.Radiopharmaceutical
	}
	return ""
}

func (x *Vial) GetRxNumber() int32 {
	if x != nil {
		return x.RxNumber
	}
	return 0
}

func (x *Vial) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *Vial) GetActualAmount() string {
	if x != nil {
		return x.ActualAmount
	}
	return ""
}

func (x *Vial) GetCalibrationDate() string {
	if x != nil {
		return x.CalibrationDate
	}
	return ""
}

func (x *Vial) GetLotNumber() string {
	if x != nil {
		return x.LotNumber
	}
	return ""
}

func (x *Vial) GetEnteredBy() string {
	if x != nil {
		return x.EnteredBy
	}
	return ""
}

func (x *Vial) GetEnteredDateTime() string {
	if x != nil {
		return x.EnteredDateTime
	}
	return ""
}

func (x *Vial) GetOrderedAmount() string {
	if x != nil {
		return x.OrderedAmount
	}
	return ""
}

func (x *Vial) GetManufacturer() string {
	if x != nil {
		return x.Manufacturer
	}
	return ""
}

func (x *Vial) GetVolume() string {
	if x != nil {
		return x.Volume
	}
	return ""
}

func (x *Vial) GetRadioactivityConcentration() string {
	if x != nil {
		return x.RadioactivityConcentration
	}
	return ""
}

type ListVialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVialsRequest) Reset() {
	*x = ListVialsRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVialsRequest) ProtoMessage() {}

func (x *ListVialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVialsRequest.ProtoReflect.Descriptor instead.
func (*ListVialsRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{16}
}

func (x *ListVialsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListVialsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListVialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vials         []*Vial                `protobuf:"bytes,1,rep,name=vials,proto3" json:"vials,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVialsResponse) Reset() {
	*x = ListVialsResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVialsResponse) ProtoMessage() {}

func (x *ListVialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVialsResponse.ProtoReflect.Descriptor instead.
func (*ListVialsResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{17}
}

func (x *ListVialsResponse) GetVials() []*Vial {
	if x != nil {
		return x.Vials
	}
	return nil
}

type ExportVialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVialsRequest) Reset() {
	*x = ExportVialsRequest{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVialsRequest) ProtoMessage() {}

func (x *ExportVialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVialsRequest.ProtoReflect.Descriptor instead.
func (*ExportVialsRequest) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{18}
}

func (x *ExportVialsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportVialsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportVialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVialsResponse) Reset() {
	*x = ExportVialsResponse{}
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVialsResponse) ProtoMessage() {}

func (x *ExportVialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vialscan_v1_vialscan_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVialsResponse.ProtoReflect.Descriptor instead.
func (*ExportVialsResponse) Descriptor() ([]byte, []int) {
	return file_vialscan_v1_vialscan_proto_rawDescGZIP(), []int{19}
}

func (x *ExportVialsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_vialscan_v1_vialscan_proto protoreflect.FileDescriptor

const file_vialscan_v1_vialscan_proto_rawDesc = "" +
	"\n" +
	"\x1avialscan/v1/vialscan.proto\x12\vvialscan.v1\"\x99\x03\n" +
	"\n" +
	"VialRecord\x120\n" +
	"\x13radiopharmaceutical\x18\x01 \x01(\tR\x13radiopharmaceutical\x12\x0e\n" +
	"\x02rx\x18\x02 \x01(\tR\x02rx\x12\x17\n" +
	"\avial_rx\x18\x03 \x01(\tR\x06vialRx\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x04 \x01(\tR\tpatientId\x12#\n" +
	"\ractual_amount\x18\x05 \x01(\tR\factualAmount\x12)\n" +
	"\x10calibration_date\x18\x06 \x01(\tR\x0fcalibrationDate\x12\x1d\n" +
	"\n" +
	"lot_number\x18\a \x01(\tR\tlotNumber\x12%\n" +
	"\x0eordered_amount\x18\b \x01(\tR\rorderedAmount\x12\x16\n" +
	"\x06volume\x18\t \x01(\tR\x06volume\x12\"\n" +
	"\fmanufacturer\x18\n" +
	" \x01(\tR\fmanufacturer\x12?\n" +
	"\x1bradioactivity_concentration\x18\v \x01(\tR\x1aradioactivityConcentration\"+\n" +
	"\x13StartSessionRequest\x12\x14\n" +
	"\x05actor\x18\x01 \x01(\tR\x05actor\"5\n" +
	"\x14StartSessionResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"~\n" +
	"\x13ScanDocumentRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x122\n" +
	"\tscan_type\x18\x02 \x01(\x0e2\x15.vialscan.v1.ScanTypeR\bscanType\x12\x14\n" +
	"\x05image\x18\x03 \x01(\fR\x05image\"\xdc\x01\n" +
	"\x14ScanDocumentResponse\x12/\n" +
	"\x06record\x18\x01 \x01(\v2\x17.vialscan.v1.VialRecordR\x06record\x12H\n" +
	"\x0ereconciliation\x18\x02 \x01(\x0e2 .vialscan.v1.ReconciliationStateR\x0ereconciliation\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\x12\x14\n" +
	"\x05lines\x18\x04 \x03(\tR\x05lines\x12\x1b\n" +
	"\timage_url\x18\x05 \x01(\tR\bimageUrl\"1\n" +
	"\x10GetRecordRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"i\n" +
	"\x11GetRecordResponse\x12/\n" +
	"\x06record\x18\x01 \x01(\v2\x17.vialscan.v1.VialRecordR\x06record\x12#\n" +
	"\rneeds_reprint\x18\x02 \x01(\bR\fneedsReprint\"_\n" +
	"\x12UpdateFieldRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x14\n" +
	"\x05field\x18\x02 \x01(\tR\x05field\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\"F\n" +
	"\x13UpdateFieldResponse\x12/\n" +
	"\x06record\x18\x01 \x01(\v2\x17.vialscan.v1.VialRecordR\x06record\"N\n" +
	"\x10ResolveRxRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1b\n" +
	"\tmanual_rx\x18\x02 \x01(\tR\bmanualRx\"H\n" +
	"\x11ResolveRxResponse\x12\x0e\n" +
	"\x02rx\x18\x01 \x01(\tR\x02rx\x12#\n" +
	"\rneeds_reprint\x18\x02 \x01(\bR\fneedsReprint\"\xb6\x01\n" +
	"\x15SetAttestationRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12(\n" +
	"\x10label_rx_correct\x18\x02 \x01(\bR\x0elabelRxCorrect\x12&\n" +
	"\x0fvial_rx_correct\x18\x03 \x01(\bR\rvialRxCorrect\x12,\n" +
	"\x12patient_id_correct\x18\x04 \x01(\bR\x10patientIdCorrect\"\x18\n" +
	"\x16SetAttestationResponse\"2\n" +
	"\x11SaveRecordRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x14\n" +
	"\x12SaveRecordResponse\"\xe2\x03\n" +
	"\x04Vial\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x120\n" +
	"\x13radiopharmaceutical\x18\x02 \x01(\tR\x13radiopharmaceutical\x12\x1b\n" +
	"\trx_number\x18\x03 \x01(\x05R\brxNumber\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x04 \x01(\tR\tpatientId\x12#\n" +
	"\ractual_amount\x18\x05 \x01(\tR\factualAmount\x12)\n" +
	"\x10calibration_date\x18\x06 \x01(\tR\x0fcalibrationDate\x12\x1d\n" +
	"\n" +
	"lot_number\x18\a \x01(\tR\tlotNumber\x12\x1d\n" +
	"\n" +
	"entered_by\x18\b \x01(\tR\tenteredBy\x12*\n" +
	"\x11entered_date_time\x18\t \x01(\tR\x0fenteredDateTime\x12%\n" +
	"\x0eordered_amount\x18\n" +
	" \x01(\tR\rorderedAmount\x12\"\n" +
	"\fmanufacturer\x18\v \x01(\tR\fmanufacturer\x12\x16\n" +
	"\x06volume\x18\f \x01(\tR\x06volume\x12?\n" +
	"\x1bradioactivity_concentration\x18\r \x01(\tR\x1aradioactivityConcentration\"H\n" +
	"\x10ListVialsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"<\n" +
	"\x11ListVialsResponse\x12'\n" +
	"\x05vials\x18\x01 \x03(\v2\x11.vialscan.v1.VialR\x05vials\"J\n" +
	"\x12ExportVialsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\")\n" +
	"\x13ExportVialsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx*g\n" +
	"\bScanType\x12\x19\n" +
	"\x15SCAN_TYPE_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15SCAN_TYPE_LARGE_LABEL\x10\x01\x12\x11\n" +
	"\rSCAN_TYPE_COA\x10\x02\x12\x12\n" +
	"\x0eSCAN_TYPE_VIAL\x10\x03*\xee\x01\n" +
	"\x13ReconciliationState\x12$\n" +
	" RECONCILIATION_STATE_UNSPECIFIED\x10\x00\x12%\n" +
	"!RECONCILIATION_STATE_BOTH_MISSING\x10\x01\x12#\n" +
	"\x1fRECONCILIATION_STATE_LABEL_ONLY\x10\x02\x12\"\n" +
	"\x1eRECONCILIATION_STATE_VIAL_ONLY\x10\x03\x12\x1e\n" +
	"\x1aRECONCILIATION_STATE_MATCH\x10\x04\x12!\n" +
	"\x1dRECONCILIATION_STATE_MISMATCH\x10\x052\xce\x04\n" +
	"\x0eCaptureService\x12S\n" +
	"\fStartSession\x12 .vialscan.v1.StartSessionRequest\x1a!.vialscan.v1.StartSessionResponse\x12S\n" +
	"\fScanDocument\x12 .vialscan.v1.ScanDocumentRequest\x1a!.vialscan.v1.ScanDocumentResponse\x12J\n" +
	"\tGetRecord\x12\x1d.vialscan.v1.GetRecordRequest\x1a\x1e.vialscan.v1.GetRecordResponse\x12P\n" +
	"\vUpdateField\x12\x1f.vialscan.v1.UpdateFieldRequest\x1a .vialscan.v1.UpdateFieldResponse\x12J\n" +
	"\tResolveRx\x12\x1d.vialscan.v1.ResolveRxRequest\x1a\x1e.vialscan.v1.ResolveRxResponse\x12Y\n" +
	"\x0eSetAttestation\x12\".vialscan.v1.SetAttestationRequest\x1a#.vialscan.v1.SetAttestationResponse\x12M\n" +
	"\n" +
	"SaveRecord\x12\x1e.vialscan.v1.SaveRecordRequest\x1a\x1f.vialscan.v1.SaveRecordResponse2\xb0\x01\n" +
	"\x10InventoryService\x12J\n" +
	"\tListVials\x12\x1d.vialscan.v1.ListVialsRequest\x1a\x1e.vialscan.v1.ListVialsResponse\x12P\n" +
	"\vExportVials\x12\x1f.vialscan.v1.ExportVialsRequest\x1a .vialscan.v1.ExportVialsResponseB?Z=github.com/unithera/vialscan/gen/proto/vialscan/v1;vialscanv1b\x06proto3"

var (
	file_vialscan_v1_vialscan_proto_rawDescOnce sync.Once
	file_vialscan_v1_vialscan_proto_rawDescData []byte
)

func file_vialscan_v1_vialscan_proto_rawDescGZIP() []byte {
	file_vialscan_v1_vialscan_proto_rawDescOnce.Do(func() {
		file_vialscan_v1_vialscan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_vialscan_v1_vialscan_proto_rawDesc), len(file_vialscan_v1_vialscan_proto_rawDesc)))
	})
	return file_vialscan_v1_vialscan_proto_rawDescData
}

var file_vialscan_v1_vialscan_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_vialscan_v1_vialscan_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_vialscan_v1_vialscan_proto_goTypes = []any{
	(ScanType)(0),                  // 0: vialscan.v1.ScanType
	(ReconciliationState)(0),       // 1: vialscan.v1.ReconciliationState
	(*VialRecord)(nil),             // 2: vialscan.v1.VialRecord
	(*StartSessionRequest)(nil),    // 3: vialscan.v1.StartSessionRequest
	(*StartSessionResponse)(nil),   // 4: vialscan.v1.StartSessionResponse
	(*ScanDocumentRequest)(nil),    // 5: vialscan.v1.ScanDocumentRequest
	(*ScanDocumentResponse)(nil),   // 6: vialscan.v1.ScanDocumentResponse
	(*GetRecordRequest)(nil),       // 7: vialscan.v1.GetRecordRequest
	(*GetRecordResponse)(nil),      // 8: vialscan.v1.GetRecordResponse
	(*UpdateFieldRequest)(nil),     // 9: vialscan.v1.UpdateFieldRequest
	(*UpdateFieldResponse)(nil),    // 10: vialscan.v1.UpdateFieldResponse
	(*ResolveRxRequest)(nil),       // 11: vialscan.v1.ResolveRxRequest
	(*ResolveRxResponse)(nil),      // 12: vialscan.v1.ResolveRxResponse
	(*SetAttestationRequest)(nil),  // 13: vialscan.v1.SetAttestationRequest
	(*SetAttestationResponse)(nil), // 14: vialscan.v1.SetAttestationResponse
	(*SaveRecordRequest)(nil),      // 15: vialscan.v1.SaveRecordRequest
	(*SaveRecordResponse)(nil),     // 16: vialscan.v1.SaveRecordResponse
	(*Vial)(nil),                   // 17: vialscan.v1.Vial
	(*ListVialsRequest)(nil),       // 18: vialscan.v1.ListVialsRequest
	(*ListVialsResponse)(nil),      // 19: vialscan.v1.ListVialsResponse
	(*ExportVialsRequest)(nil),     // 20: vialscan.v1.ExportVialsRequest
	(*ExportVialsResponse)(nil),    // 21: vialscan.v1.ExportVialsResponse
}
var file_vialscan_v1_vialscan_proto_depIdxs = []int32{
	0,  // 0: vialscan.v1.ScanDocumentRequest.scan_type:type_name -> vialscan.v1.ScanType
	2,  // 1: vialscan.v1.ScanDocumentResponse.record:type_name -> vialscan.v1.VialRecord
	1,  // 2: vialscan.v1.ScanDocumentResponse.reconciliation:type_name -> vialscan.v1.ReconciliationState
	2,  // 3: vialscan.v1.GetRecordResponse.record:type_name -> vialscan.v1.VialRecord
	2,  // 4: vialscan.v1.UpdateFieldResponse.record:type_name -> vialscan.v1.VialRecord
	17, // 5: vialscan.v1.ListVialsResponse.vials:type_name -> vialscan.v1.Vial
	3,  // 6: vialscan.v1.CaptureService.StartSession:input_type -> vialscan.v1.StartSessionRequest
	5,  // 7: vialscan.v1.CaptureService.ScanDocument:input_type -> vialscan.v1.ScanDocumentRequest
	7,  // 8: vialscan.v1.CaptureService.GetRecord:input_type -> vialscan.v1.GetRecordRequest
	9,  // 9: vialscan.v1.CaptureService.UpdateField:input_type -> vialscan.v1.UpdateFieldRequest
	11, // 10: vialscan.v1.CaptureService.ResolveRx:input_type -> vialscan.v1.ResolveRxRequest
	13, // 11: vialscan.v1.CaptureService.SetAttestation:input_type -> vialscan.v1.SetAttestationRequest
	15, // 12: vialscan.v1.CaptureService.SaveRecord:input_type -> vialscan.v1.SaveRecordRequest
	18, // 13: vialscan.v1.InventoryService.ListVials:input_type -> vialscan.v1.ListVialsRequest
	20, // 14: vialscan.v1.InventoryService.ExportVials:input_type -> vialscan.v1.ExportVialsRequest
	4,  // 15: vialscan.v1.CaptureService.StartSession:output_type -> vialscan.v1.StartSessionResponse
	6,  // 16: vialscan.v1.CaptureService.ScanDocument:output_type -> vialscan.v1.ScanDocumentResponse
	8,  // 17: vialscan.v1.CaptureService.GetRecord:output_type -> vialscan.v1.GetRecordResponse
	10, // 18: vialscan.v1.CaptureService.UpdateField:output_type -> vialscan.v1.UpdateFieldResponse
	12, // 19: vialscan.v1.CaptureService.ResolveRx:output_type -> vialscan.v1.ResolveRxResponse
	14, // 20: vialscan.v1.CaptureService.SetAttestation:output_type -> vialscan.v1.SetAttestationResponse
	16, // 21: vialscan.v1.CaptureService.SaveRecord:output_type -> vialscan.v1.SaveRecordResponse
	19, // 22: vialscan.v1.InventoryService.ListVials:output_type -> vialscan.v1.ListVialsResponse
	21, // 23: vialscan.v1.InventoryService.ExportVials:output_type -> vialscan.v1.ExportVialsResponse
	15, // [15:24] is the sub-list for method output_type
	6,  // [6:15] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_vialscan_v1_vialscan_proto_init() }
func file_vialscan_v1_vialscan_proto_init() {
	if File_vialscan_v1_vialscan_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_vialscan_v1_vialscan_proto_rawDesc), len(file_vialscan_v1_vialscan_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_vialscan_v1_vialscan_proto_goTypes,
		DependencyIndexes: file_vialscan_v1_vialscan_proto_depIdxs,
		EnumInfos:         file_vialscan_v1_vialscan_proto_enumTypes,
		MessageInfos:      file_vialscan_v1_vialscan_proto_msgTypes,
	}.Build()
	File_vialscan_v1_vialscan_proto = out.File
	file_vialscan_v1_vialscan_proto_goTypes = nil
	file_vialscan_v1_vialscan_proto_depIdxs = nil
}
