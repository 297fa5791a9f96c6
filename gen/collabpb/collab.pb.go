// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: collab.proto

package collabpb

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

type EmbedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmbedRequest) Reset() {
	*x = EmbedRequest{}
	mi := &file_collab_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmbedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmbedRequest) ProtoMessage() {}

func (x *EmbedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmbedRequest.ProtoReflect.Descriptor instead.
func (*EmbedRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{0}
}

func (x *EmbedRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type EmbedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Embedding     []float32              `protobuf:"fixed32,1,rep,packed,name=embedding,proto3" json:"embedding,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmbedResponse) Reset() {
	*x = EmbedResponse{}
	mi := &file_collab_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmbedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmbedResponse) ProtoMessage() {}

func (x *EmbedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmbedResponse.ProtoReflect.Descriptor instead.
func (*EmbedResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{1}
}

func (x *EmbedResponse) GetEmbedding() []float32 {
	if x != nil {
		return x.Embedding
	}
	return nil
}

type OutreachRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	CompanyId        string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	UserName         string                 `protobuf:"bytes,2,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	Tone             string                 `protobuf:"bytes,3,opt,name=tone,proto3" json:"tone,omitempty"`
	ThesisKeywords   []string               `protobuf:"bytes,4,rep,name=thesis_keywords,json=thesisKeywords,proto3" json:"thesis_keywords,omitempty"`
	Availability     []string               `protobuf:"bytes,5,rep,name=availability,proto3" json:"availability,omitempty"`
	InteractionNotes string                 `protobuf:"bytes,6,opt,name=interaction_notes,json=interactionNotes,proto3" json:"interaction_notes,omitempty"`
	SignalTitles     []string               `protobuf:"bytes,7,rep,name=signal_titles,json=signalTitles,proto3" json:"signal_titles,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *OutreachRequest) Reset() {
	*x = OutreachRequest{}
	mi := &file_collab_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutreachRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutreachRequest) ProtoMessage() {}

func (x *OutreachRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutreachRequest.ProtoReflect.Descriptor instead.
func (*OutreachRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{2}
}

func (x *OutreachRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *OutreachRequest) GetUserName() string {
	if x != nil {
		return x.UserName
	}
	return ""
}

func (x *OutreachRequest) GetTone() string {
	if x != nil {
		return x.Tone
	}
	return ""
}

func (x *OutreachRequest) GetThesisKeywords() []string {
	if x != nil {
		return x.ThesisKeywords
	}
	return nil
}

func (x *OutreachRequest) GetAvailability() []string {
	if x != nil {
		return x.Availability
	}
	return nil
}

func (x *OutreachRequest) GetInteractionNotes() string {
	if x != nil {
		return x.InteractionNotes
	}
	return ""
}

func (x *OutreachRequest) GetSignalTitles() []string {
	if x != nil {
		return x.SignalTitles
	}
	return nil
}

type OutreachResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OutreachResponse) Reset() {
	*x = OutreachResponse{}
	mi := &file_collab_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OutreachResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OutreachResponse) ProtoMessage() {}

func (x *OutreachResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OutreachResponse.ProtoReflect.Descriptor instead.
func (*OutreachResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{3}
}

func (x *OutreachResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

var File_collab_proto protoreflect.FileDescriptor

var file_collab_proto_rawDesc = string([]byte{
	0x0a, 0x0c, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06,
	0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x22, 0x22, 0x0a, 0x0c, 0x45, 0x6d, 0x62, 0x65, 0x64, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x78, 0x74, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x65, 0x78, 0x74, 0x22, 0x2d, 0x0a, 0x0d, 0x45, 0x6d,
	0x62, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x65,
	0x6d, 0x62, 0x65, 0x64, 0x64, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20, 0x03, 0x28, 0x02, 0x52, 0x09,
	0x65, 0x6d, 0x62, 0x65, 0x64, 0x64, 0x69, 0x6e, 0x67, 0x22, 0x80, 0x02, 0x0a, 0x0f, 0x4f, 0x75,
	0x74, 0x72, 0x65, 0x61, 0x63, 0x68, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a,
	0x0a, 0x63, 0x6f, 0x6d, 0x70, 0x61, 0x6e, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x63, 0x6f, 0x6d, 0x70, 0x61, 0x6e, 0x79, 0x49, 0x64, 0x12, 0x1b, 0x0a, 0x09,
	0x75, 0x73, 0x65, 0x72, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x08, 0x75, 0x73, 0x65, 0x72, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x6f, 0x6e,
	0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x6f, 0x6e, 0x65, 0x12, 0x27, 0x0a,
	0x0f, 0x74, 0x68, 0x65, 0x73, 0x69, 0x73, 0x5f, 0x6b, 0x65, 0x79, 0x77, 0x6f, 0x72, 0x64, 0x73,
	0x18, 0x04, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0e, 0x74, 0x68, 0x65, 0x73, 0x69, 0x73, 0x4b, 0x65,
	0x79, 0x77, 0x6f, 0x72, 0x64, 0x73, 0x12, 0x22, 0x0a, 0x0c, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61,
	0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x18, 0x05, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0c, 0x61, 0x76,
	0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x12, 0x2b, 0x0a, 0x11, 0x69, 0x6e,
	0x74, 0x65, 0x72, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x18,
	0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x61, 0x63, 0x74, 0x69,
	0x6f, 0x6e, 0x4e, 0x6f, 0x74, 0x65, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x69, 0x67, 0x6e, 0x61,
	0x6c, 0x5f, 0x74, 0x69, 0x74, 0x6c, 0x65, 0x73, 0x18, 0x07, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0c,
	0x73, 0x69, 0x67, 0x6e, 0x61, 0x6c, 0x54, 0x69, 0x74, 0x6c, 0x65, 0x73, 0x22, 0x26, 0x0a, 0x10,
	0x4f, 0x75, 0x74, 0x72, 0x65, 0x61, 0x63, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x78, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04,
	0x74, 0x65, 0x78, 0x74, 0x32, 0x8c, 0x01, 0x0a, 0x0d, 0x43, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x53,
	0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x34, 0x0a, 0x05, 0x45, 0x6d, 0x62, 0x65, 0x64, 0x12,
	0x14, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x45, 0x6d, 0x62, 0x65, 0x64, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x15, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x45,
	0x6d, 0x62, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x45, 0x0a, 0x10,
	0x47, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x74, 0x65, 0x4f, 0x75, 0x74, 0x72, 0x65, 0x61, 0x63, 0x68,
	0x12, 0x17, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x4f, 0x75, 0x74, 0x72, 0x65, 0x61,
	0x63, 0x68, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x18, 0x2e, 0x63, 0x6f, 0x6c, 0x6c,
	0x61, 0x62, 0x2e, 0x4f, 0x75, 0x74, 0x72, 0x65, 0x61, 0x63, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x42, 0x29, 0x5a, 0x27, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f,
	0x6d, 0x2f, 0x73, 0x61, 0x67, 0x6f, 0x76, 0x63, 0x2f, 0x72, 0x65, 0x65, 0x6e, 0x67, 0x61, 0x67,
	0x65, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x70, 0x62, 0x62, 0x06,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_collab_proto_rawDescOnce sync.Once
	file_collab_proto_rawDescData []byte
)

func file_collab_proto_rawDescGZIP() []byte {
	file_collab_proto_rawDescOnce.Do(func() {
		file_collab_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_collab_proto_rawDesc), len(file_collab_proto_rawDesc)))
	})
	return file_collab_proto_rawDescData
}

var file_collab_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_collab_proto_goTypes = []any{
	(*EmbedRequest)(nil),     // 0: collab.EmbedRequest
	(*EmbedResponse)(nil),    // 1: collab.EmbedResponse
	(*OutreachRequest)(nil),  // 2: collab.OutreachRequest
	(*OutreachResponse)(nil), // 3: collab.OutreachResponse
}
var file_collab_proto_depIdxs = []int32{
	0, // 0: collab.CollabService.Embed:input_type -> collab.EmbedRequest
	2, // 1: collab.CollabService.GenerateOutreach:input_type -> collab.OutreachRequest
	1, // 2: collab.CollabService.Embed:output_type -> collab.EmbedResponse
	3, // 3: collab.CollabService.GenerateOutreach:output_type -> collab.OutreachResponse
	2, // [2:4] is the sub-list for method output_type
	0, // [0:2] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_collab_proto_init() }
func file_collab_proto_init() {
	if File_collab_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_collab_proto_rawDesc), len(file_collab_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_collab_proto_goTypes,
		DependencyIndexes: file_collab_proto_depIdxs,
		MessageInfos:      file_collab_proto_msgTypes,
	}.Build()
	File_collab_proto = out.File
	file_collab_proto_goTypes = nil
	file_collab_proto_depIdxs = nil
}
