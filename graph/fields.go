package graph

// Field name constants for the generic field-write path used by package
// updater. Any field name not listed here is treated as a free-form entry
// in the entity's Attributes map, accepting any value type.
const (
	FieldClockDomain      = "clock_domain"
	FieldTimingException  = "timing_exception"
	FieldSlack            = "slack"
	FieldArrivalTime      = "arrival_time"
	FieldRequiredTime     = "required_time"
	FieldClockSignal      = "clock_signal"
	FieldResetSignal      = "reset_signal"
	FieldDelay            = "delay"
	FieldSignalName       = "signal_name"
	FieldCanonicalName    = "canonical_name"
	FieldBitRange         = "bit_range"
	FieldNetID            = "net_id"
)

// CheckNodeFieldType reports whether value is an acceptable dynamic type for
// the given node field, without mutating anything. Free-form attribute keys
// (anything not in the known-field list) accept any value.
func CheckNodeFieldType(field string, value any) bool {
	switch field {
	case FieldClockDomain, FieldTimingException, FieldClockSignal, FieldResetSignal:
		_, ok := value.(string)
		return ok
	case FieldSlack, FieldArrivalTime, FieldRequiredTime:
		_, ok := toFloat64(value)
		return ok
	default:
		return true
	}
}

// CheckEdgeFieldType is CheckNodeFieldType's edge-field counterpart.
func CheckEdgeFieldType(field string, value any) bool {
	switch field {
	case FieldClockDomain, FieldTimingException, FieldSignalName, FieldCanonicalName, FieldBitRange, FieldNetID:
		_, ok := value.(string)
		return ok
	case FieldSlack, FieldDelay:
		_, ok := toFloat64(value)
		return ok
	default:
		return true
	}
}

// GetNodeField returns the current value of field on node id. ok is false
// if the node does not exist; present is false if the field has never been
// set (nil scalar pointer, or absent attribute key).
func (s *Store) GetNodeField(id, field string) (value any, ok bool, present bool) {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	n, exists := s.nodes[id]
	if !exists {
		return nil, false, false
	}
	switch field {
	case FieldClockDomain:
		return n.ClockDomain, true, n.ClockDomain != ""
	case FieldTimingException:
		return n.TimingException, true, n.TimingException != ""
	case FieldSlack:
		return derefFloat(n.Slack)
	case FieldArrivalTime:
		return derefFloat(n.ArrivalTime)
	case FieldRequiredTime:
		return derefFloat(n.RequiredTime)
	case FieldClockSignal:
		return n.ClockSignal, true, n.ClockSignal != ""
	case FieldResetSignal:
		return n.ResetSignal, true, n.ResetSignal != ""
	default:
		v, has := n.Attributes[field]
		return v, true, has
	}
}

func derefFloat(f *float64) (any, bool, bool) {
	if f == nil {
		return nil, true, false
	}
	return *f, true, true
}

// SetNodeField writes field on node id to value, performing the node-side
// half of updater's type check. It returns ErrNoSuchEntity if id is absent
// and ErrFieldTypeMismatch if value's dynamic type does not match the
// field's declared type. Precedence gating happens in package updater,
// never here: SetNodeField always applies the write it is given.
func (s *Store) SetNodeField(id, field string, value any) error {
	s.muNode.Lock()
	defer s.muNode.Unlock()
	n, exists := s.nodes[id]
	if !exists {
		return ErrNoSuchEntity
	}
	switch field {
	case FieldClockDomain:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		n.ClockDomain = v
	case FieldTimingException:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		n.TimingException = v
	case FieldSlack:
		v, err := setFloatField(&n.Slack, value)
		_ = v
		if err != nil {
			return err
		}
	case FieldArrivalTime:
		if _, err := setFloatField(&n.ArrivalTime, value); err != nil {
			return err
		}
	case FieldRequiredTime:
		if _, err := setFloatField(&n.RequiredTime, value); err != nil {
			return err
		}
	case FieldClockSignal:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		n.ClockSignal = v
	case FieldResetSignal:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		n.ResetSignal = v
	default:
		if n.Attributes == nil {
			n.Attributes = make(map[string]any)
		}
		n.Attributes[field] = value
	}
	return nil
}

func setFloatField(dst **float64, value any) (float64, error) {
	f, ok := toFloat64(value)
	if !ok {
		return 0, ErrFieldTypeMismatch
	}
	*dst = &f
	return f, nil
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetEdgeField mirrors GetNodeField for edges.
func (s *Store) GetEdgeField(id, field string) (value any, ok bool, present bool) {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	e, exists := s.edges[id]
	if !exists {
		return nil, false, false
	}
	switch field {
	case FieldClockDomain:
		return e.ClockDomain, true, e.ClockDomain != ""
	case FieldTimingException:
		return e.TimingException, true, e.TimingException != ""
	case FieldSlack:
		return derefFloat(e.Slack)
	case FieldDelay:
		return derefFloat(e.Delay)
	case FieldSignalName:
		return e.SignalName, true, e.SignalName != ""
	case FieldCanonicalName:
		return e.CanonicalName, true, e.CanonicalName != ""
	case FieldBitRange:
		return e.BitRange, true, e.BitRange != ""
	case FieldNetID:
		return e.NetID, true, e.NetID != ""
	default:
		v, has := e.Attributes[field]
		return v, true, has
	}
}

// SetEdgeField mirrors SetNodeField for edges.
func (s *Store) SetEdgeField(id, field string, value any) error {
	s.muEdgeAdj.Lock()
	defer s.muEdgeAdj.Unlock()
	e, exists := s.edges[id]
	if !exists {
		return ErrNoSuchEntity
	}
	switch field {
	case FieldClockDomain:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		e.ClockDomain = v
	case FieldTimingException:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		e.TimingException = v
	case FieldSlack:
		if _, err := setFloatField(&e.Slack, value); err != nil {
			return err
		}
	case FieldDelay:
		if _, err := setFloatField(&e.Delay, value); err != nil {
			return err
		}
	case FieldSignalName:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		e.SignalName = v
	case FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		e.CanonicalName = v
	case FieldBitRange:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		e.BitRange = v
	case FieldNetID:
		v, ok := value.(string)
		if !ok {
			return ErrFieldTypeMismatch
		}
		e.NetID = v
	default:
		if e.Attributes == nil {
			e.Attributes = make(map[string]any)
		}
		e.Attributes[field] = value
	}
	return nil
}
