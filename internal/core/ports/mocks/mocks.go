// Package mocks holds hand-maintained gomock doubles for the interfaces in
// internal/core/ports, mirroring what `mockgen -source=...` would emit.
package mocks

import (
	"context"
	"reflect"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// --- MerchantRepository ---

type MockMerchantRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMerchantRepositoryMockRecorder
}

type MockMerchantRepositoryMockRecorder struct{ mock *MockMerchantRepository }

func NewMockMerchantRepository(ctrl *gomock.Controller) *MockMerchantRepository {
	m := &MockMerchantRepository{ctrl: ctrl}
	m.recorder = &MockMerchantRepositoryMockRecorder{m}
	return m
}

func (m *MockMerchantRepository) EXPECT() *MockMerchantRepositoryMockRecorder { return m.recorder }

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *domain.Merchant) error {
	ret := m.ctrl.Call(m, "Create", ctx, merchant)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockMerchantRepositoryMockRecorder) Create(ctx, merchant interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMerchantRepository)(nil).Create), ctx, merchant)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	merchant, _ := ret[0].(*domain.Merchant)
	err, _ := ret[1].(error)
	return merchant, err
}
func (mr *MockMerchantRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockMerchantRepository)(nil).GetByID), ctx, id)
}

func (m *MockMerchantRepository) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	ret := m.ctrl.Call(m, "GetByAccessKey", ctx, accessKey)
	merchant, _ := ret[0].(*domain.Merchant)
	err, _ := ret[1].(error)
	return merchant, err
}
func (mr *MockMerchantRepositoryMockRecorder) GetByAccessKey(ctx, accessKey interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAccessKey", reflect.TypeOf((*MockMerchantRepository)(nil).GetByAccessKey), ctx, accessKey)
}

func (m *MockMerchantRepository) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	ret := m.ctrl.Call(m, "GetByUsername", ctx, username)
	merchant, _ := ret[0].(*domain.Merchant)
	err, _ := ret[1].(error)
	return merchant, err
}
func (mr *MockMerchantRepositoryMockRecorder) GetByUsername(ctx, username interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUsername", reflect.TypeOf((*MockMerchantRepository)(nil).GetByUsername), ctx, username)
}

func (m *MockMerchantRepository) Update(ctx context.Context, merchant *domain.Merchant) error {
	ret := m.ctrl.Call(m, "Update", ctx, merchant)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockMerchantRepositoryMockRecorder) Update(ctx, merchant interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockMerchantRepository)(nil).Update), ctx, merchant)
}

// --- TransactionRepository ---

type MockTransactionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryMockRecorder
}

type MockTransactionRepositoryMockRecorder struct{ mock *MockTransactionRepository }

func NewMockTransactionRepository(ctrl *gomock.Controller) *MockTransactionRepository {
	m := &MockTransactionRepository{ctrl: ctrl}
	m.recorder = &MockTransactionRepositoryMockRecorder{m}
	return m
}

func (m *MockTransactionRepository) EXPECT() *MockTransactionRepositoryMockRecorder { return m.recorder }

func (m *MockTransactionRepository) Insert(ctx context.Context, t *domain.Transaction) error {
	ret := m.ctrl.Call(m, "Insert", ctx, t)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockTransactionRepositoryMockRecorder) Insert(ctx, t interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockTransactionRepository)(nil).Insert), ctx, t)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	tx, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return tx, err
}
func (mr *MockTransactionRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransactionRepository)(nil).GetByID), ctx, id)
}

func (m *MockTransactionRepository) GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error) {
	ret := m.ctrl.Call(m, "GetByReference", ctx, referenceID)
	tx, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return tx, err
}
func (mr *MockTransactionRepositoryMockRecorder) GetByReference(ctx, referenceID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByReference", reflect.TypeOf((*MockTransactionRepository)(nil).GetByReference), ctx, referenceID)
}

func (m *MockTransactionRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	ret := m.ctrl.Call(m, "GetByIdempotencyKey", ctx, key)
	tx, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return tx, err
}
func (mr *MockTransactionRepositoryMockRecorder) GetByIdempotencyKey(ctx, key interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIdempotencyKey", reflect.TypeOf((*MockTransactionRepository)(nil).GetByIdempotencyKey), ctx, key)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus, errCode, errMsg *string) (bool, error) {
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, from, to, errCode, errMsg)
	ok, _ := ret[0].(bool)
	err, _ := ret[1].(error)
	return ok, err
}
func (mr *MockTransactionRepositoryMockRecorder) UpdateStatus(ctx, id, from, to, errCode, errMsg interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockTransactionRepository)(nil).UpdateStatus), ctx, id, from, to, errCode, errMsg)
}

func (m *MockTransactionRepository) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	ret := m.ctrl.Call(m, "List", ctx, params)
	txs, _ := ret[0].([]domain.Transaction)
	total, _ := ret[1].(int64)
	err, _ := ret[2].(error)
	return txs, total, err
}
func (mr *MockTransactionRepositoryMockRecorder) List(ctx, params interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTransactionRepository)(nil).List), ctx, params)
}

func (m *MockTransactionRepository) GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	ret := m.ctrl.Call(m, "GetStats", ctx, merchantID, periodStart)
	stats, _ := ret[0].(*ports.TransactionStats)
	err, _ := ret[1].(error)
	return stats, err
}
func (mr *MockTransactionRepositoryMockRecorder) GetStats(ctx, merchantID, periodStart interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockTransactionRepository)(nil).GetStats), ctx, merchantID, periodStart)
}

// --- AuditRepository ---

type MockAuditRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuditRepositoryMockRecorder
}

type MockAuditRepositoryMockRecorder struct{ mock *MockAuditRepository }

func NewMockAuditRepository(ctrl *gomock.Controller) *MockAuditRepository {
	m := &MockAuditRepository{ctrl: ctrl}
	m.recorder = &MockAuditRepositoryMockRecorder{m}
	return m
}

func (m *MockAuditRepository) EXPECT() *MockAuditRepositoryMockRecorder { return m.recorder }

func (m *MockAuditRepository) Append(ctx context.Context, entry *domain.AuditLog) error {
	ret := m.ctrl.Call(m, "Append", ctx, entry)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockAuditRepositoryMockRecorder) Append(ctx, entry interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockAuditRepository)(nil).Append), ctx, entry)
}

// --- WebhookRepository ---

type MockWebhookRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookRepositoryMockRecorder
}

type MockWebhookRepositoryMockRecorder struct{ mock *MockWebhookRepository }

func NewMockWebhookRepository(ctrl *gomock.Controller) *MockWebhookRepository {
	m := &MockWebhookRepository{ctrl: ctrl}
	m.recorder = &MockWebhookRepositoryMockRecorder{m}
	return m
}

func (m *MockWebhookRepository) EXPECT() *MockWebhookRepositoryMockRecorder { return m.recorder }

func (m *MockWebhookRepository) Insert(ctx context.Context, evt *domain.WebhookEvent) error {
	ret := m.ctrl.Call(m, "Insert", ctx, evt)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockWebhookRepositoryMockRecorder) Insert(ctx, evt interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockWebhookRepository)(nil).Insert), ctx, evt)
}

func (m *MockWebhookRepository) FindPending(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error) {
	ret := m.ctrl.Call(m, "FindPending", ctx, now, limit)
	evts, _ := ret[0].([]domain.WebhookEvent)
	err, _ := ret[1].(error)
	return evts, err
}
func (mr *MockWebhookRepositoryMockRecorder) FindPending(ctx, now, limit interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindPending", reflect.TypeOf((*MockWebhookRepository)(nil).FindPending), ctx, now, limit)
}

func (m *MockWebhookRepository) RecordAttempt(ctx context.Context, id uuid.UUID, status *int, body *string, nextRetryAt *time.Time) error {
	ret := m.ctrl.Call(m, "RecordAttempt", ctx, id, status, body, nextRetryAt)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockWebhookRepositoryMockRecorder) RecordAttempt(ctx, id, status, body, nextRetryAt interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAttempt", reflect.TypeOf((*MockWebhookRepository)(nil).RecordAttempt), ctx, id, status, body, nextRetryAt)
}

// --- EncryptionService ---

type MockEncryptionService struct {
	ctrl     *gomock.Controller
	recorder *MockEncryptionServiceMockRecorder
}

type MockEncryptionServiceMockRecorder struct{ mock *MockEncryptionService }

func NewMockEncryptionService(ctrl *gomock.Controller) *MockEncryptionService {
	m := &MockEncryptionService{ctrl: ctrl}
	m.recorder = &MockEncryptionServiceMockRecorder{m}
	return m
}

func (m *MockEncryptionService) EXPECT() *MockEncryptionServiceMockRecorder { return m.recorder }

func (m *MockEncryptionService) Encrypt(plaintext string) (string, error) {
	ret := m.ctrl.Call(m, "Encrypt", plaintext)
	s, _ := ret[0].(string)
	err, _ := ret[1].(error)
	return s, err
}
func (mr *MockEncryptionServiceMockRecorder) Encrypt(plaintext interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encrypt", reflect.TypeOf((*MockEncryptionService)(nil).Encrypt), plaintext)
}

func (m *MockEncryptionService) Decrypt(ciphertext string) (string, error) {
	ret := m.ctrl.Call(m, "Decrypt", ciphertext)
	s, _ := ret[0].(string)
	err, _ := ret[1].(error)
	return s, err
}
func (mr *MockEncryptionServiceMockRecorder) Decrypt(ciphertext interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decrypt", reflect.TypeOf((*MockEncryptionService)(nil).Decrypt), ciphertext)
}

// --- SignatureService ---

type MockSignatureService struct {
	ctrl     *gomock.Controller
	recorder *MockSignatureServiceMockRecorder
}

type MockSignatureServiceMockRecorder struct{ mock *MockSignatureService }

func NewMockSignatureService(ctrl *gomock.Controller) *MockSignatureService {
	m := &MockSignatureService{ctrl: ctrl}
	m.recorder = &MockSignatureServiceMockRecorder{m}
	return m
}

func (m *MockSignatureService) EXPECT() *MockSignatureServiceMockRecorder { return m.recorder }

func (m *MockSignatureService) Sign(secretKey, payload string) string {
	ret := m.ctrl.Call(m, "Sign", secretKey, payload)
	s, _ := ret[0].(string)
	return s
}
func (mr *MockSignatureServiceMockRecorder) Sign(secretKey, payload interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockSignatureService)(nil).Sign), secretKey, payload)
}

func (m *MockSignatureService) Verify(secretKey, payload, signature string) bool {
	ret := m.ctrl.Call(m, "Verify", secretKey, payload, signature)
	ok, _ := ret[0].(bool)
	return ok
}
func (mr *MockSignatureServiceMockRecorder) Verify(secretKey, payload, signature interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockSignatureService)(nil).Verify), secretKey, payload, signature)
}

func (m *MockSignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce, body string) string {
	ret := m.ctrl.Call(m, "BuildCanonicalString", method, path, timestamp, nonce, body)
	s, _ := ret[0].(string)
	return s
}
func (mr *MockSignatureServiceMockRecorder) BuildCanonicalString(method, path, timestamp, nonce, body interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuildCanonicalString", reflect.TypeOf((*MockSignatureService)(nil).BuildCanonicalString), method, path, timestamp, nonce, body)
}

// --- HashService ---

type MockHashService struct {
	ctrl     *gomock.Controller
	recorder *MockHashServiceMockRecorder
}

type MockHashServiceMockRecorder struct{ mock *MockHashService }

func NewMockHashService(ctrl *gomock.Controller) *MockHashService {
	m := &MockHashService{ctrl: ctrl}
	m.recorder = &MockHashServiceMockRecorder{m}
	return m
}

func (m *MockHashService) EXPECT() *MockHashServiceMockRecorder { return m.recorder }

func (m *MockHashService) Hash(password string) (string, error) {
	ret := m.ctrl.Call(m, "Hash", password)
	s, _ := ret[0].(string)
	err, _ := ret[1].(error)
	return s, err
}
func (mr *MockHashServiceMockRecorder) Hash(password interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*MockHashService)(nil).Hash), password)
}

func (m *MockHashService) Verify(password, hash string) (bool, error) {
	ret := m.ctrl.Call(m, "Verify", password, hash)
	ok, _ := ret[0].(bool)
	err, _ := ret[1].(error)
	return ok, err
}
func (mr *MockHashServiceMockRecorder) Verify(password, hash interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockHashService)(nil).Verify), password, hash)
}

// --- TokenService ---

type MockTokenService struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceMockRecorder
}

type MockTokenServiceMockRecorder struct{ mock *MockTokenService }

func NewMockTokenService(ctrl *gomock.Controller) *MockTokenService {
	m := &MockTokenService{ctrl: ctrl}
	m.recorder = &MockTokenServiceMockRecorder{m}
	return m
}

func (m *MockTokenService) EXPECT() *MockTokenServiceMockRecorder { return m.recorder }

func (m *MockTokenService) Generate(merchantID uuid.UUID, accessKey string) (string, time.Time, error) {
	ret := m.ctrl.Call(m, "Generate", merchantID, accessKey)
	s, _ := ret[0].(string)
	exp, _ := ret[1].(time.Time)
	err, _ := ret[2].(error)
	return s, exp, err
}
func (mr *MockTokenServiceMockRecorder) Generate(merchantID, accessKey interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockTokenService)(nil).Generate), merchantID, accessKey)
}

func (m *MockTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	ret := m.ctrl.Call(m, "Validate", tokenString)
	claims, _ := ret[0].(*ports.TokenClaims)
	err, _ := ret[1].(error)
	return claims, err
}
func (mr *MockTokenServiceMockRecorder) Validate(tokenString interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockTokenService)(nil).Validate), tokenString)
}

// --- IdempotencyCache ---

type MockIdempotencyCache struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyCacheMockRecorder
}

type MockIdempotencyCacheMockRecorder struct{ mock *MockIdempotencyCache }

func NewMockIdempotencyCache(ctrl *gomock.Controller) *MockIdempotencyCache {
	m := &MockIdempotencyCache{ctrl: ctrl}
	m.recorder = &MockIdempotencyCacheMockRecorder{m}
	return m
}

func (m *MockIdempotencyCache) EXPECT() *MockIdempotencyCacheMockRecorder { return m.recorder }

func (m *MockIdempotencyCache) Lookup(ctx context.Context, key string) (string, error) {
	ret := m.ctrl.Call(m, "Lookup", ctx, key)
	s, _ := ret[0].(string)
	err, _ := ret[1].(error)
	return s, err
}
func (mr *MockIdempotencyCacheMockRecorder) Lookup(ctx, key interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockIdempotencyCache)(nil).Lookup), ctx, key)
}

func (m *MockIdempotencyCache) Reserve(ctx context.Context, key, txID string, ttl time.Duration) (bool, error) {
	ret := m.ctrl.Call(m, "Reserve", ctx, key, txID, ttl)
	ok, _ := ret[0].(bool)
	err, _ := ret[1].(error)
	return ok, err
}
func (mr *MockIdempotencyCacheMockRecorder) Reserve(ctx, key, txID, ttl interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reserve", reflect.TypeOf((*MockIdempotencyCache)(nil).Reserve), ctx, key, txID, ttl)
}

func (m *MockIdempotencyCache) Release(ctx context.Context, key string) error {
	ret := m.ctrl.Call(m, "Release", ctx, key)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockIdempotencyCacheMockRecorder) Release(ctx, key interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockIdempotencyCache)(nil).Release), ctx, key)
}

// --- NonceStore ---

type MockNonceStore struct {
	ctrl     *gomock.Controller
	recorder *MockNonceStoreMockRecorder
}

type MockNonceStoreMockRecorder struct{ mock *MockNonceStore }

func NewMockNonceStore(ctrl *gomock.Controller) *MockNonceStore {
	m := &MockNonceStore{ctrl: ctrl}
	m.recorder = &MockNonceStoreMockRecorder{m}
	return m
}

func (m *MockNonceStore) EXPECT() *MockNonceStoreMockRecorder { return m.recorder }

func (m *MockNonceStore) CheckAndSet(ctx context.Context, merchantID, nonce string, ttl time.Duration) (bool, error) {
	ret := m.ctrl.Call(m, "CheckAndSet", ctx, merchantID, nonce, ttl)
	ok, _ := ret[0].(bool)
	err, _ := ret[1].(error)
	return ok, err
}
func (mr *MockNonceStoreMockRecorder) CheckAndSet(ctx, merchantID, nonce, ttl interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAndSet", reflect.TypeOf((*MockNonceStore)(nil).CheckAndSet), ctx, merchantID, nonce, ttl)
}

// --- FraudScorer ---

type MockFraudScorer struct {
	ctrl     *gomock.Controller
	recorder *MockFraudScorerMockRecorder
}

type MockFraudScorerMockRecorder struct{ mock *MockFraudScorer }

func NewMockFraudScorer(ctrl *gomock.Controller) *MockFraudScorer {
	m := &MockFraudScorer{ctrl: ctrl}
	m.recorder = &MockFraudScorerMockRecorder{m}
	return m
}

func (m *MockFraudScorer) EXPECT() *MockFraudScorerMockRecorder { return m.recorder }

func (m *MockFraudScorer) Score(in ports.FraudCheckInput) decimal.Decimal {
	ret := m.ctrl.Call(m, "Score", in)
	s, _ := ret[0].(decimal.Decimal)
	return s
}
func (mr *MockFraudScorerMockRecorder) Score(in interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Score", reflect.TypeOf((*MockFraudScorer)(nil).Score), in)
}

func (m *MockFraudScorer) ShouldBlock(score decimal.Decimal) bool {
	ret := m.ctrl.Call(m, "ShouldBlock", score)
	ok, _ := ret[0].(bool)
	return ok
}
func (mr *MockFraudScorerMockRecorder) ShouldBlock(score interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ShouldBlock", reflect.TypeOf((*MockFraudScorer)(nil).ShouldBlock), score)
}

// --- IdempotencyGate ---

type MockIdempotencyGate struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyGateMockRecorder
}

type MockIdempotencyGateMockRecorder struct{ mock *MockIdempotencyGate }

func NewMockIdempotencyGate(ctrl *gomock.Controller) *MockIdempotencyGate {
	m := &MockIdempotencyGate{ctrl: ctrl}
	m.recorder = &MockIdempotencyGateMockRecorder{m}
	return m
}

func (m *MockIdempotencyGate) EXPECT() *MockIdempotencyGateMockRecorder { return m.recorder }

func (m *MockIdempotencyGate) Lookup(ctx context.Context, key string) (*domain.Transaction, error) {
	ret := m.ctrl.Call(m, "Lookup", ctx, key)
	tx, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return tx, err
}
func (mr *MockIdempotencyGateMockRecorder) Lookup(ctx, key interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockIdempotencyGate)(nil).Lookup), ctx, key)
}

func (m *MockIdempotencyGate) Reserve(ctx context.Context, key string, txID uuid.UUID) (bool, error) {
	ret := m.ctrl.Call(m, "Reserve", ctx, key, txID)
	ok, _ := ret[0].(bool)
	err, _ := ret[1].(error)
	return ok, err
}
func (mr *MockIdempotencyGateMockRecorder) Reserve(ctx, key, txID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reserve", reflect.TypeOf((*MockIdempotencyGate)(nil).Reserve), ctx, key, txID)
}

func (m *MockIdempotencyGate) Release(ctx context.Context, key string) {
	m.ctrl.Call(m, "Release", ctx, key)
}
func (mr *MockIdempotencyGateMockRecorder) Release(ctx, key interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockIdempotencyGate)(nil).Release), ctx, key)
}

func (m *MockIdempotencyGate) Generate() (string, error) {
	ret := m.ctrl.Call(m, "Generate")
	s, _ := ret[0].(string)
	err, _ := ret[1].(error)
	return s, err
}
func (mr *MockIdempotencyGateMockRecorder) Generate() *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockIdempotencyGate)(nil).Generate))
}

// --- ProviderAdapter ---

type MockProviderAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockProviderAdapterMockRecorder
}

type MockProviderAdapterMockRecorder struct{ mock *MockProviderAdapter }

func NewMockProviderAdapter(ctrl *gomock.Controller) *MockProviderAdapter {
	m := &MockProviderAdapter{ctrl: ctrl}
	m.recorder = &MockProviderAdapterMockRecorder{m}
	return m
}

func (m *MockProviderAdapter) EXPECT() *MockProviderAdapterMockRecorder { return m.recorder }

func (m *MockProviderAdapter) Charge(ctx context.Context, tx *domain.Transaction) (*ports.ChargeResult, error) {
	ret := m.ctrl.Call(m, "Charge", ctx, tx)
	res, _ := ret[0].(*ports.ChargeResult)
	err, _ := ret[1].(error)
	return res, err
}
func (mr *MockProviderAdapterMockRecorder) Charge(ctx, tx interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Charge", reflect.TypeOf((*MockProviderAdapter)(nil).Charge), ctx, tx)
}

// --- EventBus ---

type MockEventBus struct {
	ctrl     *gomock.Controller
	recorder *MockEventBusMockRecorder
}

type MockEventBusMockRecorder struct{ mock *MockEventBus }

func NewMockEventBus(ctrl *gomock.Controller) *MockEventBus {
	m := &MockEventBus{ctrl: ctrl}
	m.recorder = &MockEventBusMockRecorder{m}
	return m
}

func (m *MockEventBus) EXPECT() *MockEventBusMockRecorder { return m.recorder }

func (m *MockEventBus) Publish(ctx context.Context, topic, key string, evt ports.PaymentEvent) error {
	ret := m.ctrl.Call(m, "Publish", ctx, topic, key, evt)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockEventBusMockRecorder) Publish(ctx, topic, key, evt interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockEventBus)(nil).Publish), ctx, topic, key, evt)
}

func (m *MockEventBus) Subscribe(ctx context.Context, topic, groupID string, handler ports.EventHandler) error {
	ret := m.ctrl.Call(m, "Subscribe", ctx, topic, groupID, handler)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockEventBusMockRecorder) Subscribe(ctx, topic, groupID, handler interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockEventBus)(nil).Subscribe), ctx, topic, groupID, handler)
}

func (m *MockEventBus) Close() error {
	ret := m.ctrl.Call(m, "Close")
	err, _ := ret[0].(error)
	return err
}
func (mr *MockEventBusMockRecorder) Close() *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockEventBus)(nil).Close))
}

// --- WebhookEnqueuer ---

type MockWebhookEnqueuer struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookEnqueuerMockRecorder
}

type MockWebhookEnqueuerMockRecorder struct{ mock *MockWebhookEnqueuer }

func NewMockWebhookEnqueuer(ctrl *gomock.Controller) *MockWebhookEnqueuer {
	m := &MockWebhookEnqueuer{ctrl: ctrl}
	m.recorder = &MockWebhookEnqueuerMockRecorder{m}
	return m
}

func (m *MockWebhookEnqueuer) EXPECT() *MockWebhookEnqueuerMockRecorder { return m.recorder }

func (m *MockWebhookEnqueuer) Enqueue(ctx context.Context, tx *domain.Transaction) error {
	ret := m.ctrl.Call(m, "Enqueue", ctx, tx)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockWebhookEnqueuerMockRecorder) Enqueue(ctx, tx interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enqueue", reflect.TypeOf((*MockWebhookEnqueuer)(nil).Enqueue), ctx, tx)
}

// --- PaymentOrchestrator ---

type MockPaymentOrchestrator struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentOrchestratorMockRecorder
}

type MockPaymentOrchestratorMockRecorder struct{ mock *MockPaymentOrchestrator }

func NewMockPaymentOrchestrator(ctrl *gomock.Controller) *MockPaymentOrchestrator {
	m := &MockPaymentOrchestrator{ctrl: ctrl}
	m.recorder = &MockPaymentOrchestratorMockRecorder{m}
	return m
}

func (m *MockPaymentOrchestrator) EXPECT() *MockPaymentOrchestratorMockRecorder { return m.recorder }

func (m *MockPaymentOrchestrator) Initiate(ctx context.Context, req ports.PaymentRequest) (*domain.Transaction, error) {
	ret := m.ctrl.Call(m, "Initiate", ctx, req)
	tx, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return tx, err
}
func (mr *MockPaymentOrchestratorMockRecorder) Initiate(ctx, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Initiate", reflect.TypeOf((*MockPaymentOrchestrator)(nil).Initiate), ctx, req)
}

func (m *MockPaymentOrchestrator) Process(ctx context.Context, txID uuid.UUID) error {
	ret := m.ctrl.Call(m, "Process", ctx, txID)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockPaymentOrchestratorMockRecorder) Process(ctx, txID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Process", reflect.TypeOf((*MockPaymentOrchestrator)(nil).Process), ctx, txID)
}

func (m *MockPaymentOrchestrator) FetchStatus(ctx context.Context, idOrReference string) (*domain.Transaction, error) {
	ret := m.ctrl.Call(m, "FetchStatus", ctx, idOrReference)
	tx, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return tx, err
}
func (mr *MockPaymentOrchestratorMockRecorder) FetchStatus(ctx, idOrReference interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchStatus", reflect.TypeOf((*MockPaymentOrchestrator)(nil).FetchStatus), ctx, idOrReference)
}

// --- AuditService ---

type MockAuditService struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceMockRecorder
}

type MockAuditServiceMockRecorder struct{ mock *MockAuditService }

func NewMockAuditService(ctrl *gomock.Controller) *MockAuditService {
	m := &MockAuditService{ctrl: ctrl}
	m.recorder = &MockAuditServiceMockRecorder{m}
	return m
}

func (m *MockAuditService) EXPECT() *MockAuditServiceMockRecorder { return m.recorder }

func (m *MockAuditService) Record(ctx context.Context, log *domain.AuditLog) error {
	ret := m.ctrl.Call(m, "Record", ctx, log)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockAuditServiceMockRecorder) Record(ctx, log interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockAuditService)(nil).Record), ctx, log)
}

// --- ReportingService ---

type MockReportingService struct {
	ctrl     *gomock.Controller
	recorder *MockReportingServiceMockRecorder
}

type MockReportingServiceMockRecorder struct{ mock *MockReportingService }

func NewMockReportingService(ctrl *gomock.Controller) *MockReportingService {
	m := &MockReportingService{ctrl: ctrl}
	m.recorder = &MockReportingServiceMockRecorder{m}
	return m
}

func (m *MockReportingService) EXPECT() *MockReportingServiceMockRecorder { return m.recorder }

func (m *MockReportingService) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	ret := m.ctrl.Call(m, "ListTransactions", ctx, params)
	txs, _ := ret[0].([]domain.Transaction)
	total, _ := ret[1].(int64)
	err, _ := ret[2].(error)
	return txs, total, err
}
func (mr *MockReportingServiceMockRecorder) ListTransactions(ctx, params interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockReportingService)(nil).ListTransactions), ctx, params)
}

func (m *MockReportingService) GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	ret := m.ctrl.Call(m, "GetStats", ctx, merchantID, periodStart)
	stats, _ := ret[0].(*ports.TransactionStats)
	err, _ := ret[1].(error)
	return stats, err
}
func (mr *MockReportingServiceMockRecorder) GetStats(ctx, merchantID, periodStart interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockReportingService)(nil).GetStats), ctx, merchantID, periodStart)
}

// --- MerchantManagementService ---

type MockMerchantManagementService struct {
	ctrl     *gomock.Controller
	recorder *MockMerchantManagementServiceMockRecorder
}

type MockMerchantManagementServiceMockRecorder struct{ mock *MockMerchantManagementService }

func NewMockMerchantManagementService(ctrl *gomock.Controller) *MockMerchantManagementService {
	m := &MockMerchantManagementService{ctrl: ctrl}
	m.recorder = &MockMerchantManagementServiceMockRecorder{m}
	return m
}

func (m *MockMerchantManagementService) EXPECT() *MockMerchantManagementServiceMockRecorder {
	return m.recorder
}

func (m *MockMerchantManagementService) GetProfile(ctx context.Context, merchantID uuid.UUID) (*ports.MerchantProfile, error) {
	ret := m.ctrl.Call(m, "GetProfile", ctx, merchantID)
	p, _ := ret[0].(*ports.MerchantProfile)
	err, _ := ret[1].(error)
	return p, err
}
func (mr *MockMerchantManagementServiceMockRecorder) GetProfile(ctx, merchantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockMerchantManagementService)(nil).GetProfile), ctx, merchantID)
}

func (m *MockMerchantManagementService) UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error {
	ret := m.ctrl.Call(m, "UpdateWebhookURL", ctx, merchantID, webhookURL)
	err, _ := ret[0].(error)
	return err
}
func (mr *MockMerchantManagementServiceMockRecorder) UpdateWebhookURL(ctx, merchantID, webhookURL interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateWebhookURL", reflect.TypeOf((*MockMerchantManagementService)(nil).UpdateWebhookURL), ctx, merchantID, webhookURL)
}

func (m *MockMerchantManagementService) RotateKeys(ctx context.Context, merchantID uuid.UUID) (*ports.RotateKeysResponse, error) {
	ret := m.ctrl.Call(m, "RotateKeys", ctx, merchantID)
	resp, _ := ret[0].(*ports.RotateKeysResponse)
	err, _ := ret[1].(error)
	return resp, err
}
func (mr *MockMerchantManagementServiceMockRecorder) RotateKeys(ctx, merchantID interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RotateKeys", reflect.TypeOf((*MockMerchantManagementService)(nil).RotateKeys), ctx, merchantID)
}

// --- AuthService ---

type MockAuthService struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceMockRecorder
}

type MockAuthServiceMockRecorder struct{ mock *MockAuthService }

func NewMockAuthService(ctrl *gomock.Controller) *MockAuthService {
	m := &MockAuthService{ctrl: ctrl}
	m.recorder = &MockAuthServiceMockRecorder{m}
	return m
}

func (m *MockAuthService) EXPECT() *MockAuthServiceMockRecorder { return m.recorder }

func (m *MockAuthService) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	ret := m.ctrl.Call(m, "Register", ctx, req)
	resp, _ := ret[0].(*ports.RegisterResponse)
	err, _ := ret[1].(error)
	return resp, err
}
func (mr *MockAuthServiceMockRecorder) Register(ctx, req interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthService)(nil).Register), ctx, req)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	ret := m.ctrl.Call(m, "Login", ctx, username, password)
	tok, _ := ret[0].(string)
	exp, _ := ret[1].(time.Time)
	err, _ := ret[2].(error)
	return tok, exp, err
}
func (mr *MockAuthServiceMockRecorder) Login(ctx, username, password interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthService)(nil).Login), ctx, username, password)
}
