package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Core User Information
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    username VARCHAR(50) UNIQUE NOT NULL,
    coins INTEGER NOT NULL DEFAULT 500 CHECK (coins >= 0),
    experience INTEGER NOT NULL DEFAULT 0 CHECK (experience >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Crops Table
-- One live row per planted crop; harvesting deletes the row.
CREATE TABLE IF NOT EXISTS crops (
    crop_id UUID PRIMARY KEY,
    owner_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    crop_type VARCHAR(50) NOT NULL,
    position_x INTEGER NOT NULL,
    position_y INTEGER NOT NULL,
    planted_at TIMESTAMPTZ NOT NULL,
    harvest_time TIMESTAMPTZ NOT NULL,
    stage VARCHAR(20) NOT NULL DEFAULT 'seedling',
    is_harvestable BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (owner_id, position_x, position_y)
);

CREATE INDEX IF NOT EXISTS idx_crops_owner ON crops(owner_id);
CREATE INDEX IF NOT EXISTS idx_crops_growing ON crops(is_harvestable) WHERE is_harvestable = FALSE;

-- Market Prices Table
-- Current price per crop type, overwritten by each simulator tick.
CREATE TABLE IF NOT EXISTS market_prices (
    crop_type VARCHAR(50) PRIMARY KEY,
    price INTEGER NOT NULL CHECK (price >= 1),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Market History Table
-- Append-only snapshot of all prices per tick.
CREATE TABLE IF NOT EXISTS market_history (
    history_id BIGSERIAL PRIMARY KEY,
    snapshot_at TIMESTAMPTZ NOT NULL,
    prices JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_market_history_snapshot_at ON market_history(snapshot_at DESC);

-- Notifications Table
CREATE TABLE IF NOT EXISTS notifications (
    notification_id UUID PRIMARY KEY,
    owner_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    title VARCHAR(100) NOT NULL,
    message TEXT NOT NULL,
    kind VARCHAR(20) NOT NULL,
    crop_id UUID,
    read BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_owner_created ON notifications(owner_id, created_at DESC);

-- Transactions Table
-- Append-only trade ledger.
CREATE TABLE IF NOT EXISTS transactions (
    transaction_id UUID PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    crop_type VARCHAR(50) NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    price_per_unit INTEGER NOT NULL,
    total_earnings INTEGER NOT NULL,
    kind VARCHAR(20) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions(user_id, created_at DESC);
`
