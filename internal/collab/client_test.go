package collab

import (
	"context"
	"errors"
	"testing"

	pb "github.com/sagovc/reengage/gen/collabpb"
	"google.golang.org/grpc"
)

// #region mock

type mockCollabService struct {
	pb.CollabServiceClient

	embedResp *pb.EmbedResponse
	embedErr  error

	outreachReq  *pb.OutreachRequest
	outreachResp *pb.OutreachResponse
	outreachErr  error
}

func (m *mockCollabService) Embed(_ context.Context, _ *pb.EmbedRequest, _ ...grpc.CallOption) (*pb.EmbedResponse, error) {
	return m.embedResp, m.embedErr
}

func (m *mockCollabService) GenerateOutreach(_ context.Context, req *pb.OutreachRequest, _ ...grpc.CallOption) (*pb.OutreachResponse, error) {
	m.outreachReq = req
	return m.outreachResp, m.outreachErr
}

// #endregion mock

// #region constructor-tests

func TestNewClientAndClose(t *testing.T) {
	client, err := NewClient("localhost:0")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCloseWithoutConnection(t *testing.T) {
	client := NewClientWithService(&mockCollabService{})
	if err := client.Close(); err != nil {
		t.Fatalf("Close without conn: %v", err)
	}
}

// #endregion constructor-tests

// #region embed-tests

func TestEmbed(t *testing.T) {
	mock := &mockCollabService{
		embedResp: &pb.EmbedResponse{Embedding: []float32{0.1, 0.2, 0.3}},
	}
	client := NewClientWithService(mock)

	emb, err := client.Embed(context.Background(), "enterprise pilot secured")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(emb) != 3 || emb[0] != 0.1 {
		t.Fatalf("unexpected embedding: %v", emb)
	}
}

func TestEmbedError(t *testing.T) {
	client := NewClientWithService(&mockCollabService{embedErr: errors.New("unavailable")})
	if _, err := client.Embed(context.Background(), "text"); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion embed-tests

// #region outreach-tests

func TestGenerateOutreach(t *testing.T) {
	mock := &mockCollabService{
		outreachResp: &pb.OutreachResponse{Text: "Hi! Congrats on the pilot."},
	}
	client := NewClientWithService(mock)

	text, err := client.GenerateOutreach(context.Background(), OutreachInput{
		CompanyID:        "acme",
		UserName:         "Maya Chen",
		Tone:             "warm, direct",
		ThesisKeywords:   []string{"vertical ai"},
		Availability:     []string{"Tue mornings"},
		InteractionNotes: "revisit after pilot",
		SignalTitles:     []string{"Fortune 100 design partner announced"},
	})
	if err != nil {
		t.Fatalf("GenerateOutreach: %v", err)
	}
	if text != "Hi! Congrats on the pilot." {
		t.Fatalf("unexpected text: %q", text)
	}

	// The full personalization context crosses the wire.
	req := mock.outreachReq
	if req.CompanyId != "acme" || req.UserName != "Maya Chen" || req.Tone != "warm, direct" {
		t.Fatalf("request fields dropped: %+v", req)
	}
	if len(req.ThesisKeywords) != 1 || len(req.SignalTitles) != 1 || req.InteractionNotes == "" {
		t.Fatalf("request slices dropped: %+v", req)
	}
}

func TestGenerateOutreachError(t *testing.T) {
	client := NewClientWithService(&mockCollabService{outreachErr: errors.New("unavailable")})
	if _, err := client.GenerateOutreach(context.Background(), OutreachInput{CompanyID: "acme"}); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion outreach-tests
