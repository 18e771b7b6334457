package util

import "github.com/google/uuid"

func StrPointer(s string) *string { return &s }

func Int32Pointer(i int32) *int32 { return &i }

func Int64Pointer(i int64) *int64 { return &i }

func UUIDPointer(id uuid.UUID) *uuid.UUID { return &id }
