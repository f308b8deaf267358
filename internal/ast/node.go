package ast

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (b *Bind) NodePos() Position    { return b.Pos }
func (b *Bind) NodeEndPos() Position { return b.EndPos }
func (*Bind) NodeType() NodeType     { return BIND }

func (s *StructDecl) NodePos() Position    { return s.Pos }
func (s *StructDecl) NodeEndPos() Position { return s.EndPos }
func (*StructDecl) NodeType() NodeType     { return STRUCT_DECL }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (s *ExprStmt) NodePos() Position    { return s.Pos }
func (s *ExprStmt) NodeEndPos() Position { return s.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (s *BlockStmt) NodePos() Position    { return s.Pos }
func (s *BlockStmt) NodeEndPos() Position { return s.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (s *IfStmt) NodePos() Position    { return s.Pos }
func (s *IfStmt) NodeEndPos() Position { return s.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (s *WhileStmt) NodePos() Position    { return s.Pos }
func (s *WhileStmt) NodeEndPos() Position { return s.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (s *ForStmt) NodePos() Position    { return s.Pos }
func (s *ForStmt) NodeEndPos() Position { return s.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (s *ReturnStmt) NodePos() Position    { return s.Pos }
func (s *ReturnStmt) NodeEndPos() Position { return s.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *IntLit) NodePos() Position    { return e.Pos }
func (e *IntLit) NodeEndPos() Position { return e.EndPos }
func (*IntLit) NodeType() NodeType     { return INT_LIT }

func (e *FloatLit) NodePos() Position    { return e.Pos }
func (e *FloatLit) NodeEndPos() Position { return e.EndPos }
func (*FloatLit) NodeType() NodeType     { return FLOAT_LIT }

func (e *BoolLit) NodePos() Position    { return e.Pos }
func (e *BoolLit) NodeEndPos() Position { return e.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (e *CharLit) NodePos() Position    { return e.Pos }
func (e *CharLit) NodeEndPos() Position { return e.EndPos }
func (*CharLit) NodeType() NodeType     { return CHAR_LIT }

func (e *StringLit) NodePos() Position    { return e.Pos }
func (e *StringLit) NodeEndPos() Position { return e.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (e *NullLit) NodePos() Position    { return e.Pos }
func (e *NullLit) NodeEndPos() Position { return e.EndPos }
func (*NullLit) NodeType() NodeType     { return NULL_LIT }

func (e *NoExpr) NodePos() Position    { return e.Pos }
func (e *NoExpr) NodeEndPos() Position { return e.EndPos }
func (*NoExpr) NodeType() NodeType     { return NO_EXPR }

func (e *IdentExpr) NodePos() Position    { return e.Pos }
func (e *IdentExpr) NodeEndPos() Position { return e.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (e *BinaryExpr) NodePos() Position    { return e.Pos }
func (e *BinaryExpr) NodeEndPos() Position { return e.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (e *UnaryExpr) NodePos() Position    { return e.Pos }
func (e *UnaryExpr) NodeEndPos() Position { return e.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (e *CallExpr) NodePos() Position    { return e.Pos }
func (e *CallExpr) NodeEndPos() Position { return e.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (e *CastExpr) NodePos() Position    { return e.Pos }
func (e *CastExpr) NodeEndPos() Position { return e.EndPos }
func (*CastExpr) NodeType() NodeType     { return CAST_EXPR }

func (e *AddrExpr) NodePos() Position    { return e.Pos }
func (e *AddrExpr) NodeEndPos() Position { return e.EndPos }
func (*AddrExpr) NodeType() NodeType     { return ADDR_EXPR }

func (e *DerefExpr) NodePos() Position    { return e.Pos }
func (e *DerefExpr) NodeEndPos() Position { return e.EndPos }
func (*DerefExpr) NodeType() NodeType     { return DEREF_EXPR }

func (e *FieldAccessExpr) NodePos() Position    { return e.Pos }
func (e *FieldAccessExpr) NodeEndPos() Position { return e.EndPos }
func (*FieldAccessExpr) NodeType() NodeType     { return FIELD_ACCESS_EXPR }

func (e *AssignExpr) NodePos() Position    { return e.Pos }
func (e *AssignExpr) NodeEndPos() Position { return e.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (e *SizeofExpr) NodePos() Position    { return e.Pos }
func (e *SizeofExpr) NodeEndPos() Position { return e.EndPos }
func (*SizeofExpr) NodeType() NodeType     { return SIZEOF_EXPR }
