package codegen

import "strconv"

// Action dispatches a single named semantic action, exactly as the parser
// would invoke it via action(name, token). Guard actions (the check_*
// family) return their truthy result; every other action's return value is
// meaningless and should be ignored.
//
// While a loop's iterator-expression mode is active, every action except
// end_iterator_expression_mode is recorded verbatim into that loop's replay
// buffer instead of being executed — this is what lets a for loop's step
// expression, parsed before the body, run after it.
func (g *Generator) Action(name string, tok Token) bool {
	if g.iteratorMode && name != "end_iterator_expression_mode" {
		top := g.loopStack[len(g.loopStack)-1]
		top.IteratorExprPB = append(top.IteratorExprPB, deferredAction{name: name, tok: tok})
		return false
	}

	switch name {
	case "start_program":
		g.Program.Append(Code{Op: ASSIGN, A: constAddr("4"), B: indirectAddr("0")})
		g.Program.Append(Code{Op: JP, A: unknownAddress})
		g.declareOutputBuiltin()
		return false

	case "end_program":
		if fd, ok := g.funcMap.Get("main"); ok {
			g.Program.PatchA(1, constAddr(strconv.Itoa(fd.PBIdx)))
		}
		return false

	case "start_declaration":
		g.declStack = append(g.declStack, &pendingDecl{})
		return false

	case "declaration_type":
		if len(g.declStack) == 0 {
			// A param's type-spec fires this action too (the grammar calls
			// it at every type-spec), but param_id records its own INT-typed
			// pendingDecl directly (params are always int), so there is no
			// pending declaration here to write into.
			return false
		}
		d := g.topDecl()
		if tok.Lexeme == "void" {
			d.dataType = DataVoid
		} else {
			d.dataType = DataInt
		}
		return false

	case "declaration_id":
		d := g.topDecl()
		d.lexeme = tok.Lexeme
		g.checkRedeclaration(tok)
		return false

	case "declare_function":
		d := g.topDecl()
		d.symType = SymFunction
		d.address = constAddr(strconv.Itoa(g.Program.Len()))
		return false

	case "declare_var":
		d := g.topDecl()
		d.symType = SymVariable
		d.address = g.temp.alloc()
		g.Program.Append(Code{Op: ASSIGN, A: constAddr("0"), B: d.address})
		if d.dataType == DataVoid {
			g.errs.add(g.line(tok), errVoidType(d.lexeme))
		}
		return false

	case "declare_array":
		// The base cell was already allocated (and zero-initialized) by
		// declare_var; the array's address becomes that cell's numeric
		// address as a constant, so indexing can do address arithmetic on
		// it.
		d := g.topDecl()
		d.symType = SymArray
		d.isArray = true
		d.address.Kind = CONST
		return false

	case "declare_array_length":
		d := g.topDecl()
		n, _ := strconv.Atoi(tok.Lexeme)
		d.size = n
		if n > 1 {
			g.temp.reserve(n - 1)
		}
		return false

	case "end_var_declaration":
		d := g.popDecl()
		g.Symtab.Append(&Entry{
			Scope:    g.scope,
			Lexeme:   d.lexeme,
			SymType:  d.symType,
			DataType: d.dataType,
			Size:     d.size,
			IsParam:  d.isParam,
			Address:  d.address,
		})
		return false

	case "start_function_declaration":
		d := g.popDecl()
		pbIdx, _ := strconv.Atoi(d.address.Text)
		fd := &FuncDecl{
			Name:               d.lexeme,
			DataType:           d.dataType,
			PBIdx:              pbIdx,
			Scope:              g.scope + 1,
			ReturnAddress:      g.temp.alloc(),
			ReturnValueAddress: g.temp.alloc(),
		}
		g.Symtab.Append(&Entry{
			Scope:    g.scope,
			Lexeme:   d.lexeme,
			SymType:  SymFunction,
			DataType: d.dataType,
			Address:  d.address,
			Func:     fd,
		})
		g.funcMap.Put(d.lexeme, fd)
		g.funcStack = append(g.funcStack, fd)
		return false

	case "param_id":
		g.declStack = append(g.declStack, &pendingDecl{
			dataType: DataInt,
			lexeme:   tok.Lexeme,
			symType:  SymVariable,
			isParam:  true,
			address:  g.temp.alloc(),
		})
		return false

	case "param_is_array":
		g.topDecl().symType = SymArray
		return false

	case "end_param":
		d := g.popDecl()
		g.Symtab.Append(&Entry{
			Scope:    g.scope,
			Lexeme:   d.lexeme,
			SymType:  d.symType,
			DataType: d.dataType,
			IsParam:  true,
			Address:  d.address,
		})
		fd := g.curFunc()
		fd.Args = append(fd.Args, &ArgDecl{Name: d.lexeme, ArgType: d.symType, Address: d.address})
		return false

	case "end_function_declaration":
		n := len(g.funcStack)
		fd := g.funcStack[n-1]
		g.funcStack = g.funcStack[:n-1]
		if fd.Name != "main" {
			g.Program.Append(Code{Op: JP, A: fd.ReturnAddress})
		}
		return false

	case "jp_ra":
		g.Program.Append(Code{Op: JP, A: g.curFunc().ReturnAddress})
		return false

	case "set_return_value":
		v, _ := g.popStack()
		g.Program.Append(Code{Op: ASSIGN, A: v, B: g.curFunc().ReturnValueAddress})
		return false

	case "start_scope":
		g.scope++
		return false

	case "end_scope":
		g.Symtab.PopLastScope(g.scope)
		g.scope--
		return false

	case "push_address":
		if e, ok := g.Symtab.GetLastByLexeme(tok.Lexeme); ok {
			g.pushStack(e.Address, e.SymType)
			g.lastVariable = tok.Lexeme
			g.lastVariableEntry = e
		} else {
			g.errs.add(g.line(tok), errScoping(tok.Lexeme))
			g.pushStack(unknownAddress, SymUnknown)
			g.lastVariable = tok.Lexeme
			g.lastVariableEntry = nil
		}
		return false

	case "push_const":
		g.pushStack(constAddr(tok.Lexeme), SymVariable)
		return false

	case "array_index":
		idx, idxType := g.popStack()
		base, _ := g.popStack()
		t := g.temp.alloc()
		g.Program.Append(Code{Op: MULT, A: idx, B: constAddr("4"), C: t})
		g.Program.Append(Code{Op: ADD, A: base, B: t, C: t})
		g.pushStack(Address{Text: t.Text, Kind: INDIRECT}, idxType)
		return false

	case "assign":
		rhs, rhsType := g.popStack()
		lhs, lhsType := g.popStack()
		if rhsType != lhsType && rhsType != SymUnknown && lhsType != SymUnknown {
			g.errs.add(g.line(tok), errTypeMismatch(rhsType, lhsType))
		}
		g.Program.Append(Code{Op: ASSIGN, A: rhs, B: lhs})
		g.pushStack(lhs, lhsType)
		return false

	case "assign_var":
		// No-op action hook; see the design notes on this open question.
		return false

	case "comparison_op":
		g.lastOperator = tok.Lexeme
		return false

	case "comparison":
		b, _ := g.popStack()
		a, _ := g.popStack()
		op := LT
		if g.lastOperator == "==" {
			op = EQ
		}
		t := g.temp.alloc()
		g.Program.Append(Code{Op: op, A: a, B: b, C: t})
		g.pushStack(t, SymVariable)
		return false

	case "arith_op":
		g.arithOpStack = append(g.arithOpStack, tok.Lexeme)
		return false

	case "arith":
		op := g.arithOpStack[len(g.arithOpStack)-1]
		g.arithOpStack = g.arithOpStack[:len(g.arithOpStack)-1]
		codeOp := ADD
		if op == "-" {
			codeOp = SUB
		}
		g.emitBinaryArith(tok, codeOp)
		return false

	case "mult":
		g.emitBinaryArith(tok, MULT)
		return false

	case "negate":
		a, at := g.popStack()
		t := g.temp.alloc()
		g.Program.Append(Code{Op: SUB, A: constAddr("0"), B: a, C: t})
		g.pushStack(t, at)
		return false

	case "pop_stack":
		g.popStack()
		return false

	case "save_if":
		cond, _ := g.popStack()
		idx := g.Program.Append(Code{Op: JPF, A: cond, B: unknownAddress})
		g.ifStack = append(g.ifStack, &IfDetails{ConditionJPFPBIdx: idx})
		return false

	case "if_jpf":
		top := g.ifStack[len(g.ifStack)-1]
		g.Program.PatchB(top.ConditionJPFPBIdx, idxAddr(g.Program.Len()))
		return false

	case "if_else_jpf":
		top := g.ifStack[len(g.ifStack)-1]
		top.ElseJPPBIdx = g.Program.Len()
		top.HasElse = true
		g.Program.Append(Code{Op: JP, A: unknownAddress})
		g.Program.PatchB(top.ConditionJPFPBIdx, idxAddr(g.Program.Len()))
		return false

	case "else_jp":
		top := g.ifStack[len(g.ifStack)-1]
		g.Program.PatchA(top.ElseJPPBIdx, idxAddr(g.Program.Len()))
		return false

	case "end_if":
		g.ifStack = g.ifStack[:len(g.ifStack)-1]
		return false

	case "start_for":
		g.loopStack = append(g.loopStack, &LoopDetails{LabelPBIdx: g.Program.Len(), Lineno: tok.Line})
		return false

	case "save_for":
		top := g.loopStack[len(g.loopStack)-1]
		top.ConditionJPFPBIdx = g.Program.Len()
		cond, _ := g.popStack()
		g.Program.Append(Code{Op: JPF, A: cond, B: unknownAddress})
		return false

	case "start_iterator_expression_mode":
		g.iteratorMode = true
		return false

	case "end_iterator_expression_mode":
		g.iteratorMode = false
		return false

	case "break_loop":
		if len(g.loopStack) == 0 {
			g.errs.add(g.line(tok), errBreak())
			return false
		}
		top := g.loopStack[len(g.loopStack)-1]
		idx := g.Program.Append(Code{Op: JP, A: unknownAddress})
		top.BreaksPBIdx = append(top.BreaksPBIdx, idx)
		return false

	case "end_for":
		n := len(g.loopStack)
		loop := g.loopStack[n-1]
		g.loopStack = g.loopStack[:n-1]

		g.iteratorReplay = true
		g.replayLine = loop.Lineno
		for _, da := range loop.IteratorExprPB {
			g.Action(da.name, da.tok)
		}
		g.iteratorReplay = false

		g.Program.Append(Code{Op: JP, A: idxAddr(loop.LabelPBIdx)})
		loop.NextPBIdx = g.Program.Len()
		for _, bidx := range loop.BreaksPBIdx {
			g.Program.PatchA(bidx, idxAddr(loop.NextPBIdx))
		}
		g.Program.PatchB(loop.ConditionJPFPBIdx, idxAddr(loop.NextPBIdx))
		return false

	case "start_function_call":
		fd, ok := g.funcMap.Get(g.lastVariable)
		g.popStack()
		fcd := &FunctionCallDetails{}
		if ok {
			fcd.Function = fd
		}
		g.callStack = append(g.callStack, fcd)
		return false

	case "add_arg":
		call := g.callStack[len(g.callStack)-1]
		addr, typ := g.popStack()
		call.Args = append(call.Args, addr)
		call.ArgTypes = append(call.ArgTypes, typ)
		return false

	case "end_function_call":
		g.endFunctionCall(tok)
		return false

	case "check_array":
		return g.lastVariableEntry != nil && g.lastVariableEntry.SymType == SymArray

	case "check_var":
		return g.lastVariableEntry != nil && g.lastVariableEntry.SymType != SymFunction

	case "check_function":
		return g.lastVariableEntry != nil && g.lastVariableEntry.SymType == SymFunction

	case "check_declaration_var":
		return g.topDecl().dataType != DataVoid

	case "check_return_void":
		fd := g.curFunc()
		return fd != nil && fd.DataType == DataVoid

	case "check_return_non_void":
		fd := g.curFunc()
		return fd != nil && fd.DataType != DataVoid

	default:
		return false
	}
}

func (g *Generator) topDecl() *pendingDecl {
	return g.declStack[len(g.declStack)-1]
}

func (g *Generator) popDecl() *pendingDecl {
	n := len(g.declStack)
	d := g.declStack[n-1]
	g.declStack = g.declStack[:n-1]
	return d
}

// checkRedeclaration recognizes a redeclaration within the current scope
// but deliberately does not react to it: see the design notes on this open
// question.
func (g *Generator) checkRedeclaration(tok Token) {
	_, _ = g.Symtab.GetLastByLexeme(tok.Lexeme)
}

// emitBinaryArith implements the shared type-checking and emission logic
// for arith (ADD/SUB) and mult (MULT). An already-unknown operand
// suppresses both the instruction and any further diagnostics (the error
// that produced it was reported at its source); a genuine type mismatch is
// reported once and also yields an unknown dummy instead of an
// instruction, so the error cannot cascade into further false mismatches
// downstream.
func (g *Generator) emitBinaryArith(tok Token, op Op) {
	b, bt := g.popStack()
	a, at := g.popStack()

	if at == SymUnknown || bt == SymUnknown {
		g.pushStack(unknownAddress, SymUnknown)
		return
	}
	if at != bt {
		g.errs.add(g.line(tok), errTypeMismatch(at, bt))
		g.pushStack(unknownAddress, SymUnknown)
		return
	}

	t := g.temp.alloc()
	g.Program.Append(Code{Op: op, A: a, B: b, C: t})
	g.pushStack(t, at)
}

func (g *Generator) endFunctionCall(tok Token) {
	n := len(g.callStack)
	call := g.callStack[n-1]
	g.callStack = g.callStack[:n-1]

	if call.Function == nil {
		g.pushStack(unknownAddress, SymUnknown)
		return
	}
	fd := call.Function

	if len(call.Args) != len(fd.Args) {
		g.errs.add(g.line(tok), errFunctionParamNumber(fd.Name))
		g.pushStack(unknownAddress, SymUnknown)
		return
	}

	for i, declared := range fd.Args {
		actual := call.ArgTypes[i]
		if actual != SymUnknown && declared.ArgType != actual {
			// only the first mismatched argument is reported for a call
			g.errs.add(g.line(tok), errFunctionParamTypeMismatch(i+1, fd.Name, declared.ArgType, actual))
			g.pushStack(unknownAddress, SymUnknown)
			return
		}
	}

	if fd.Name == "output" {
		g.Program.Append(Code{Op: PRINT, A: call.Args[0]})
		g.pushStack(unknownAddress, SymVariable)
		return
	}

	g.emitCallSequence(fd, call)
}

// emitCallSequence implements the caller-save, explicit-runtime-stack call
// convention (see the design notes for the call sequence).
func (g *Generator) emitCallSequence(fd *FuncDecl, call *FunctionCallDetails) {
	caller := g.curFunc()

	if caller != nil && caller.Name != "main" {
		g.save(caller.ReturnAddress)
	}

	var scopeSyms []*Entry
	if caller != nil {
		scopeSyms = g.Symtab.GetScopeSymbols(caller.Scope)
		for _, e := range scopeSyms {
			if !isConst(e.Address) {
				g.save(e.Address)
			}
		}
	}

	for _, v := range g.valueStack {
		if !isConst(v) {
			g.save(v)
		}
	}

	for i, declared := range fd.Args {
		g.Program.Append(Code{Op: ASSIGN, A: call.Args[i], B: declared.Address})
	}

	assignIdx := g.Program.Len()
	g.Program.Append(Code{Op: ASSIGN, A: idxAddr(assignIdx + 2), B: fd.ReturnAddress})
	g.Program.Append(Code{Op: JP, A: idxAddr(fd.PBIdx)})

	for i := len(g.valueStack) - 1; i >= 0; i-- {
		v := g.valueStack[i]
		if !isConst(v) {
			g.restore(v)
		}
	}
	for i := len(scopeSyms) - 1; i >= 0; i-- {
		e := scopeSyms[i]
		if !isConst(e.Address) {
			g.restore(e.Address)
		}
	}
	if caller != nil && caller.Name != "main" {
		g.restore(caller.ReturnAddress)
	}

	if fd.DataType != DataVoid {
		t := g.temp.alloc()
		g.Program.Append(Code{Op: ASSIGN, A: fd.ReturnValueAddress, B: t})
		g.pushStack(t, SymVariable)
	} else {
		// A void call still leaves a result slot on the value stack so the
		// statement-level pop has something to discard; the slot's address
		// is empty but its type is a plain value.
		g.pushStack(unknownAddress, SymVariable)
	}
}
