package investapi

// Sandbox accounts reuse the request and response messages of the main
// services wherever the shapes match, so this file only carries the
// sandbox-specific account and pay-in messages.

type OpenSandboxAccountRequest struct{}

func (m *OpenSandboxAccountRequest) Reset()         { *m = OpenSandboxAccountRequest{} }
func (m *OpenSandboxAccountRequest) String() string { return messageString(m) }
func (*OpenSandboxAccountRequest) ProtoMessage()    {}

type OpenSandboxAccountResponse struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *OpenSandboxAccountResponse) Reset()         { *m = OpenSandboxAccountResponse{} }
func (m *OpenSandboxAccountResponse) String() string { return messageString(m) }
func (*OpenSandboxAccountResponse) ProtoMessage()    {}

func (m *OpenSandboxAccountResponse) GetAccountId() string {
	if m != nil {
		return m.AccountId
	}
	return ""
}

type CloseSandboxAccountRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *CloseSandboxAccountRequest) Reset()         { *m = CloseSandboxAccountRequest{} }
func (m *CloseSandboxAccountRequest) String() string { return messageString(m) }
func (*CloseSandboxAccountRequest) ProtoMessage()    {}

type CloseSandboxAccountResponse struct{}

func (m *CloseSandboxAccountResponse) Reset()         { *m = CloseSandboxAccountResponse{} }
func (m *CloseSandboxAccountResponse) String() string { return messageString(m) }
func (*CloseSandboxAccountResponse) ProtoMessage()    {}

type SandboxPayInRequest struct {
	AccountId string      `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Amount    *MoneyValue `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *SandboxPayInRequest) Reset()         { *m = SandboxPayInRequest{} }
func (m *SandboxPayInRequest) String() string { return messageString(m) }
func (*SandboxPayInRequest) ProtoMessage()    {}

type SandboxPayInResponse struct {
	Balance *MoneyValue `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *SandboxPayInResponse) Reset()         { *m = SandboxPayInResponse{} }
func (m *SandboxPayInResponse) String() string { return messageString(m) }
func (*SandboxPayInResponse) ProtoMessage()    {}

func (m *SandboxPayInResponse) GetBalance() *MoneyValue {
	if m != nil {
		return m.Balance
	}
	return nil
}
